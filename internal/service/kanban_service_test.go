package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/testutil"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

type kanbanFixture struct {
	db       *sql.DB
	agencyID int64
	tasks    repository.TaskRepository
	svc      KanbanService
}

func newKanbanFixture(t *testing.T) *kanbanFixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	agencyID := testutil.SeedAgency(t, db, "North Agency", "north.example.com")

	tasks := repository.NewTaskRepository(db)
	users := repository.NewUserRepository(db)
	projects := repository.NewProjectRepository(db)

	return &kanbanFixture{
		db:       db,
		agencyID: agencyID,
		tasks:    tasks,
		svc:      NewKanbanService(db, tasks, users, projects),
	}
}

func (f *kanbanFixture) createTask(t *testing.T, title string) int64 {
	t.Helper()

	id, err := f.svc.CreateTask(context.Background(), f.agencyID, 0, &transfer.TaskCreation{
		Title:      title,
		KanbanType: string(models.KanbanGeneral),
	})
	require.NoError(t, err)
	return id
}

func (f *kanbanFixture) orderOf(t *testing.T, id int64) (string, int) {
	t.Helper()

	task, err := f.tasks.GetByID(context.Background(), f.agencyID, id)
	require.NoError(t, err)
	require.NotNil(t, task)
	return task.Status, task.Order
}

func TestCreateTaskAppendsToFirstColumn(t *testing.T) {
	f := newKanbanFixture(t)

	first := f.createTask(t, "write brief")
	second := f.createTask(t, "book photographer")

	status, order := f.orderOf(t, first)
	assert.Equal(t, models.StatusTodo, status)
	assert.Equal(t, 0, order)

	status, order = f.orderOf(t, second)
	assert.Equal(t, models.StatusTodo, status)
	assert.Equal(t, 1, order)
}

func TestCreateTaskRejectsUnknownBoard(t *testing.T) {
	f := newKanbanFixture(t)

	_, err := f.svc.CreateTask(context.Background(), f.agencyID, 0, &transfer.TaskCreation{
		Title:      "x",
		KanbanType: "backlog",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestMoveTaskRewritesDestinationOrder(t *testing.T) {
	f := newKanbanFixture(t)
	ctx := context.Background()

	a := f.createTask(t, "a")
	b := f.createTask(t, "b")
	c := f.createTask(t, "c")

	err := f.svc.MoveTask(ctx, f.agencyID, &transfer.TaskMove{
		TaskID:       a,
		NewStatus:    models.StatusDoing,
		NewOrderList: []int64{a},
	})
	require.NoError(t, err)

	// b lands above a in doing; the caller's list is the whole column.
	err = f.svc.MoveTask(ctx, f.agencyID, &transfer.TaskMove{
		TaskID:       b,
		NewStatus:    models.StatusDoing,
		NewOrderList: []int64{b, a},
	})
	require.NoError(t, err)

	status, order := f.orderOf(t, b)
	assert.Equal(t, models.StatusDoing, status)
	assert.Equal(t, 0, order)

	status, order = f.orderOf(t, a)
	assert.Equal(t, models.StatusDoing, status)
	assert.Equal(t, 1, order)

	// The source column keeps its gap; relative order is what matters.
	status, order = f.orderOf(t, c)
	assert.Equal(t, models.StatusTodo, status)
	assert.Equal(t, 2, order)
}

func TestMoveTaskRejectsCrossBoardStatus(t *testing.T) {
	f := newKanbanFixture(t)

	a := f.createTask(t, "a")

	err := f.svc.MoveTask(context.Background(), f.agencyID, &transfer.TaskMove{
		TaskID:       a,
		NewStatus:    models.StatusDesign,
		NewOrderList: []int64{a},
	})
	var ia *apperrors.InvalidActionError
	assert.ErrorAs(t, err, &ia)

	status, _ := f.orderOf(t, a)
	assert.Equal(t, models.StatusTodo, status)
}

func TestMoveTaskUnknown(t *testing.T) {
	f := newKanbanFixture(t)

	err := f.svc.MoveTask(context.Background(), f.agencyID, &transfer.TaskMove{
		TaskID:    42,
		NewStatus: models.StatusDoing,
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestBoardColumns(t *testing.T) {
	f := newKanbanFixture(t)
	ctx := context.Background()

	f.createTask(t, "a")
	f.createTask(t, "b")

	columns, err := f.svc.Board(ctx, f.agencyID, string(models.KanbanGeneral))
	require.NoError(t, err)
	require.Len(t, columns, 3)
	assert.Equal(t, models.StatusTodo, columns[0].Status)
	assert.Len(t, columns[0].Tasks, 2)
	assert.Equal(t, "a", columns[0].Tasks[0].Title)
	assert.Len(t, columns[1].Tasks, 0)

	operational, err := f.svc.Board(ctx, f.agencyID, string(models.KanbanOperational))
	require.NoError(t, err)
	require.Len(t, operational, 6)
	for _, col := range operational {
		assert.NotEqual(t, models.StatusPublished, col.Status)
	}

	_, err = f.svc.Board(ctx, f.agencyID, "backlog")
	assert.True(t, apperrors.IsValidation(err))
}

func TestBoardIsTenantScoped(t *testing.T) {
	f := newKanbanFixture(t)
	ctx := context.Background()

	f.createTask(t, "mine")

	otherAgency := testutil.SeedAgency(t, f.db, "South Agency", "south.example.com")
	columns, err := f.svc.Board(ctx, otherAgency, string(models.KanbanGeneral))
	require.NoError(t, err)
	for _, col := range columns {
		assert.Empty(t, col.Tasks)
	}
}
