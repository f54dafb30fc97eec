package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpAdapter "github.com/ojunaidi/portfolio/adapters/http"
	"github.com/ojunaidi/portfolio/adapters/persistence"
	aboutUC "github.com/ojunaidi/portfolio/internal/application/usecase/about"
	experienceUC "github.com/ojunaidi/portfolio/internal/application/usecase/experience"
	projectUC "github.com/ojunaidi/portfolio/internal/application/usecase/project"
	skillUC "github.com/ojunaidi/portfolio/internal/application/usecase/skill"
	userinfoUC "github.com/ojunaidi/portfolio/internal/application/usecase/userinfo"
	"github.com/ojunaidi/portfolio/internal/config"
	"github.com/ojunaidi/portfolio/pkg/logger"
)

func main() {

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Repositories
	userInfoRepo := persistence.NewPostgresUserInfoRepo(dbPool, appLogger)
	aboutRepo := persistence.NewPostgresAboutRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	tagRepo := persistence.NewPostgresTagRepo(dbPool, appLogger)

	// Use Cases
	userInfoUseCase := userinfoUC.NewUserInfoUseCase(userInfoRepo)
	aboutUseCase := aboutUC.NewAboutUseCase(aboutRepo)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, tagRepo, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo, tagRepo)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, tagRepo)

	// HTTP Handlers
	userInfoHandler := httpAdapter.NewUserInfoHandler(userInfoUseCase, appLogger)
	aboutHandler := httpAdapter.NewAboutHandler(aboutUseCase, appLogger)
	skillHandler := httpAdapter.NewSkillHandler(skillUseCase, appLogger)
	experienceHandler := httpAdapter.NewExperienceHandler(experienceUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(
		createProjectUseCase,
		listProjectsUseCase,
		deleteProjectUseCase,
		appLogger,
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(httpAdapter.ErrorMiddleware(appLogger))
	router.Use(httpAdapter.CORSMiddleware(cfg.CORS.Origins))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.GET("/userinfo", userInfoHandler.GetUserInfo)
		api.PUT("/userinfo", userInfoHandler.UpdateUserInfo)

		api.GET("/about", aboutHandler.GetAbout)
		api.PUT("/about", aboutHandler.UpdateAbout)

		skills := api.Group("/skills")
		{
			skills.GET("", skillHandler.ListSkills)
			skills.POST("", skillHandler.CreateSkill)
			skills.DELETE("/:id", skillHandler.DeleteSkill)
		}

		experience := api.Group("/experience")
		{
			experience.GET("", experienceHandler.ListExperience)
			experience.POST("", experienceHandler.CreateExperience)
			experience.DELETE("/:id", experienceHandler.DeleteExperience)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}
	}

	httpAdapter.RegisterPages(router)

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
