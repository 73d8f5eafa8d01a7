package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	config "github.com/mvduarte/agencyhub/configs"
	"github.com/mvduarte/agencyhub/internal/api/handlers"
	"github.com/mvduarte/agencyhub/internal/api/middleware"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set migration dialect: %v", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	agencyRepo := repository.NewAgencyRepository(db)
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	socialAccountRepo := repository.NewSocialAccountRepository(db)
	postRepo := repository.NewSocialPostRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	calendarRepo := repository.NewCalendarEventRepository(db)
	mediaFolderRepo := repository.NewMediaFolderRepository(db)
	mediaFileRepo := repository.NewMediaFileRepository(db)

	r2Service := service.NewR2Service(cfg)
	authService := service.NewAuthService(userRepo, cfg.SecretKey)
	userService := service.NewUserService(userRepo)
	clientService := service.NewClientService(clientRepo, r2Service)
	projectService := service.NewProjectService(projectRepo, clientRepo)
	approvalService := service.NewApprovalService(db, postRepo, taskRepo, clientRepo, projectRepo, agencyRepo, cfg.BaseURL)
	kanbanService := service.NewKanbanService(db, taskRepo, userRepo, projectRepo)
	postService := service.NewSocialPostService(db, postRepo, destinationRepo, socialAccountRepo, clientRepo, taskRepo)
	calendarService := service.NewCalendarService(calendarRepo, clientRepo)
	mediaService := service.NewMediaService(mediaFolderRepo, mediaFileRepo, clientRepo, r2Service)
	dashboardService := service.NewDashboardService(clientRepo, projectRepo, postRepo, taskRepo)

	metaService := service.NewMetaService(cfg, socialAccountRepo)
	linkedinService := service.NewLinkedinService(cfg, socialAccountRepo)
	tiktokService := service.NewTiktokService(cfg, socialAccountRepo)
	platformService := service.NewPlatformService(cfg, socialAccountRepo, clientRepo, metaService, linkedinService, tiktokService)

	tenantMiddleware := middleware.NewTenantMiddleware(agencyRepo)
	authMiddleware := middleware.NewAuthMiddleware(cfg)

	// Public client review pages and OAuth callbacks carry their own
	// credential (token or signed state) and must work on any host, so they
	// register ahead of tenant resolution.
	approval := handlers.NewApprovalHandler(approvalService)
	app.Get("/approval/:token", approval.Review)
	app.Post("/approval/:token/decision", approval.Decide)

	platform := handlers.NewPlatformHandler(platformService, cfg)
	app.Get("/connect/:platform/callback", platform.Callback)

	app.Use(tenantMiddleware.Resolve())

	auth := handlers.NewAuthHandler(cfg, authService)
	app.Post("/login", auth.Login)
	app.Post("/logout", auth.Logout)

	api := app.Group("/api")
	api.Use(authMiddleware.RequireSession())

	api.Get("/me", auth.Me)

	dashboard := handlers.NewDashboardHandler(dashboardService)
	api.Get("/dashboard", dashboard.Summary)

	task := handlers.NewTaskHandler(kanbanService, approvalService)
	api.Get("/kanban", task.Board)
	api.Post("/tasks", task.Create)
	api.Post("/tasks/content", task.CreateContentTask)
	api.Get("/tasks/:id", task.Info)
	api.Put("/tasks/:id", task.Update)
	api.Post("/tasks/move", task.Move)
	api.Delete("/tasks/:id", task.Remove)

	api.Post("/posts/:id/approval-link", approval.GenerateLink)

	client := handlers.NewClientHandler(clientService)
	api.Get("/clients", client.List)
	api.Post("/clients", client.Create)
	api.Get("/clients/:id", client.Info)
	api.Put("/clients/:id", client.Update)
	api.Post("/clients/:id/assets", client.UploadAsset)
	api.Delete("/clients/:id", client.Remove)

	project := handlers.NewProjectHandler(projectService)
	api.Get("/projects", project.List)
	api.Post("/projects", project.Create)
	api.Get("/projects/:id", project.Info)
	api.Put("/projects/:id/status", project.SetStatus)
	api.Delete("/projects/:id", project.Remove)

	post := handlers.NewPostHandler(postService)
	api.Get("/posts", post.ListByClient)
	api.Post("/posts", post.Create)
	api.Get("/posts/:id", post.Info)
	api.Delete("/posts/:id", post.Remove)

	calendar := handlers.NewCalendarHandler(calendarService)
	api.Get("/calendar", calendar.Month)
	api.Post("/calendar", calendar.Create)
	api.Put("/calendar/:id", calendar.Update)
	api.Put("/calendar/:id/status", calendar.SetStatus)
	api.Delete("/calendar/:id", calendar.Remove)

	api.Get("/connect/:platform", platform.Connect)
	api.Get("/accounts", platform.List)
	api.Delete("/accounts/:id", platform.Disconnect)

	media := handlers.NewMediaHandler(mediaService)
	api.Get("/media", media.Browse)
	api.Post("/media/folders", media.CreateFolder)
	api.Put("/media/folders/:id", media.RenameFolder)
	api.Delete("/media/folders/:id", media.RemoveFolder)
	api.Post("/media/files", media.Upload)
	api.Delete("/media/files/:id", media.RemoveFile)

	user := handlers.NewUserHandler(userService, authService)
	api.Get("/team", user.Team)
	api.Post("/team", user.Save)
	api.Delete("/team/:id", user.Deactivate)

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
