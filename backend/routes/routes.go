package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"studyhub/backend/config"
	"studyhub/backend/controllers"
	"studyhub/backend/middleware"
	"studyhub/backend/progress"
	"studyhub/backend/repository"
	"studyhub/backend/session"
	"studyhub/backend/utils"
)

// clock is the time source for task completion stamps and streak counting.
var clock = time.Now

// NewApp builds the HTTP application with middleware and every route mounted.
func NewApp(db *gorm.DB, cfg *config.Config, denylist session.Denylist, logger *log.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:      "StudyHub",
		BodyLimit:    (cfg.MaxUploadMB + 1) << 20,
		ErrorHandler: utils.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))
	app.Use(middleware.MetricsMiddleware())
	app.Use(middleware.LoggingMiddleware(logger, cfg.LogFormat != "json"))

	app.Static("/uploads", cfg.UploadDir, fiber.Static{
		ModifyResponse: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
			return nil
		},
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if err := SetupRoutes(app, db, cfg, denylist, logger); err != nil {
		return nil, err
	}
	return app, nil
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, denylist session.Denylist, logger *log.Logger) error {
	repo := repository.New(db)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	policy, err := progress.PolicyFor(cfg.StreakPolicy, loc)
	if err != nil {
		return err
	}

	healthController := controllers.NewHealthController(repo)
	app.Get("/healthz", healthController.Health)

	// Auth routes
	authController := controllers.NewAuthController(repo, cfg, denylist, logger)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg, denylist, logger)

	app.Post("/api/auth/logout", authMiddleware, authController.Logout)

	// User routes
	userController := controllers.NewUserController(repo)
	app.Get("/api/auth/user", authMiddleware, userController.GetProfile)
	app.Put("/api/auth/user", authMiddleware, userController.UpdateProfile)

	api := app.Group("/api")

	// Tasks routes
	tasksController := controllers.NewTasksController(repo)
	tasksController.Now = clock
	tasks := api.Group("/tasks", authMiddleware)
	tasks.Get("/", tasksController.GetTasks)
	tasks.Post("/", tasksController.CreateTask)
	tasks.Patch("/:id", tasksController.UpdateTask)
	tasks.Delete("/:id", tasksController.DeleteTask)

	// Notes routes
	notesController := controllers.NewNotesController(repo)
	notes := api.Group("/notes", authMiddleware)
	notes.Get("/", notesController.GetNotes)
	notes.Post("/", notesController.CreateNote)
	notes.Delete("/:id", notesController.DeleteNote)

	// Skills routes
	skillsController := controllers.NewSkillsController(repo)
	skills := api.Group("/skills", authMiddleware)
	skills.Get("/", skillsController.GetSkills)
	skills.Post("/", skillsController.CreateSkill)
	skills.Patch("/:id", skillsController.UpdateSkill)
	skills.Delete("/:id", skillsController.DeleteSkill)

	// Achievements routes
	achievementsController := controllers.NewAchievementsController(repo, cfg, logger)
	achievements := api.Group("/achievements", authMiddleware)
	achievements.Get("/", achievementsController.GetAchievements)
	achievements.Post("/", achievementsController.CreateAchievement)
	achievements.Delete("/:id", achievementsController.DeleteAchievement)

	// Study session routes
	sessionsController := controllers.NewStudySessionsController(repo)
	sessions := api.Group("/study-sessions", authMiddleware)
	sessions.Get("/", sessionsController.GetStudySessions)
	sessions.Post("/", sessionsController.CreateStudySession)

	// Progress routes
	progressController := controllers.NewProgressController(repo, progress.NewAggregator(policy, progress.WithClock(clock)), logger)
	api.Get("/progress", authMiddleware, progressController.GetProgress)

	return nil
}
