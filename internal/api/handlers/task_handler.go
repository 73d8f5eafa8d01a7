package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvduarte/agencyhub/internal/service"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

type TaskHandler struct {
	s  service.KanbanService
	ap service.ApprovalService
}

func NewTaskHandler(kanban service.KanbanService, approval service.ApprovalService) *TaskHandler {
	return &TaskHandler{s: kanban, ap: approval}
}

func (h *TaskHandler) Board(c *fiber.Ctx) error {
	kanbanType := c.Query("type", "general")

	columns, err := h.s.Board(c.Context(), GetAgencyID(c), kanbanType)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"type":    kanbanType,
		"columns": columns,
	})
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req transfer.TaskCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}

	taskID, err := h.s.CreateTask(c.Context(), GetAgencyID(c), GetUserID(c), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "task created",
		"task_id": taskID,
	})
}

// CreateContentTask creates a briefing card with its linked draft post.
func (h *TaskHandler) CreateContentTask(c *fiber.Ctx) error {
	var req transfer.ContentTaskCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}

	taskID, postID, err := h.ap.CreateContentTask(c.Context(), GetAgencyID(c), GetUserID(c), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "content task created",
		"task_id": taskID,
		"post_id": postID,
	})
}

func (h *TaskHandler) Info(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid task id",
		})
	}

	task, err := h.s.TaskInfo(c.Context(), GetAgencyID(c), int64(taskID))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"task": task})
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid task id",
		})
	}

	var req transfer.TaskCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}

	if err := h.s.UpdateTask(c.Context(), GetAgencyID(c), int64(taskID), &req); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "task updated"})
}

func (h *TaskHandler) Move(c *fiber.Ctx) error {
	var req transfer.TaskMove
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unable to parse body",
		})
	}

	if err := h.s.MoveTask(c.Context(), GetAgencyID(c), &req); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "task moved"})
}

func (h *TaskHandler) Remove(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid task id",
		})
	}

	if err := h.s.RemoveTask(c.Context(), GetAgencyID(c), int64(taskID)); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "task removed"})
}
