package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"timetracker/config"
	"timetracker/controllers"
	"timetracker/middleware"
	"timetracker/models"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	v1 := router.Group("/api/v1", middleware.Auth(cfg.JWTSecret))

	// Units
	v1.POST("/units", middleware.RequireRole(models.RoleAdmin, models.RoleManager), controllers.UnitCreate)
	v1.GET("/units", controllers.UnitList)
	v1.GET("/units/:id", controllers.UnitGet)
	v1.PUT("/units/:id", middleware.RequireRole(models.RoleAdmin, models.RoleManager), controllers.UnitUpdate)
	v1.DELETE("/units/:id", middleware.RequireRole(models.RoleAdmin), controllers.UnitArchive)

	// Customers
	v1.POST("/customers", middleware.RequireRole(models.RoleAdmin, models.RoleManager), controllers.CustomerCreate)
	v1.GET("/customers", controllers.CustomerList)
	v1.GET("/customers/:id", controllers.CustomerGet)
	v1.PUT("/customers/:id", middleware.RequireRole(models.RoleAdmin, models.RoleManager), controllers.CustomerUpdate)
	v1.DELETE("/customers/:id", middleware.RequireRole(models.RoleAdmin), controllers.CustomerArchive)

	// Projects
	v1.POST("/projects", middleware.RequireRole(models.RoleAdmin, models.RoleManager), controllers.ProjectCreate)
	v1.GET("/projects", controllers.ProjectList)
	v1.GET("/projects/:id", controllers.ProjectGet)
	v1.GET("/projects/:id/hierarchy", controllers.ProjectHierarchyGet)
	v1.PUT("/projects/:id", middleware.RequireRole(models.RoleAdmin, models.RoleManager), controllers.ProjectUpdate)
	v1.DELETE("/projects/:id", middleware.RequireRole(models.RoleAdmin), controllers.ProjectArchive)
	v1.POST("/projects/:id/users", middleware.RequireRole(models.RoleAdmin, models.RoleManager), controllers.ProjectAssignUser)
	v1.GET("/projects/:id/users", controllers.ProjectUsers)
	v1.DELETE("/projects/:id/users/:user_id", middleware.RequireRole(models.RoleAdmin, models.RoleManager), controllers.ProjectUnassignUser)

	// Tasks
	v1.POST("/tasks", middleware.RequireRole(models.RoleAdmin, models.RoleManager), controllers.TaskCreate)
	v1.GET("/tasks", controllers.TaskList)
	v1.GET("/tasks/:id", controllers.TaskGet)
	v1.PUT("/tasks/:id", middleware.RequireRole(models.RoleAdmin, models.RoleManager), controllers.TaskUpdate)
	v1.DELETE("/tasks/:id", middleware.RequireRole(models.RoleAdmin), controllers.TaskArchive)
	v1.POST("/tasks/:id/users", middleware.RequireRole(models.RoleAdmin, models.RoleManager), controllers.TaskAssignUser)
	v1.GET("/tasks/:id/users", controllers.TaskUsers)
	v1.DELETE("/tasks/:id/users/:user_id", middleware.RequireRole(models.RoleAdmin, models.RoleManager), controllers.TaskUnassignUser)

	// Users
	v1.GET("/users", controllers.UserList)
	v1.GET("/users/:id", controllers.UserGet)
	v1.PUT("/users/:id", middleware.RequireRole(models.RoleAdmin), controllers.UserUpdate)
	v1.DELETE("/users/:id", middleware.RequireRole(models.RoleAdmin), controllers.UserDeactivate)
	v1.GET("/users/:id/projects", controllers.UserProjects)
	v1.GET("/users/:id/tasks", controllers.UserTasks)

	// Time entries
	v1.POST("/time-entries", controllers.TimeEntryCreate)
	v1.GET("/time-entries", controllers.TimeEntryList)
	v1.GET("/time-entries/:id", controllers.TimeEntryGet)
	v1.PUT("/time-entries/:id", controllers.TimeEntryUpdate)
	v1.DELETE("/time-entries/:id", controllers.TimeEntryDelete)

	// Timesheets
	v1.GET("/timesheets/my", controllers.TimesheetMy)

	// Reports
	v1.GET("/reports/project/:id", controllers.ReportProject)
	v1.GET("/reports/user/:id", controllers.ReportUser)
	v1.GET("/reports/overall", controllers.ReportOverall)

	// Agent tools
	v1.GET("/tools", controllers.ToolList)
	v1.POST("/tools/:name/call", controllers.ToolCall)

	return router
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	gin.DefaultWriter = zerolog.ConsoleWriter{Out: os.Stdout}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := models.ConnectDatabase(cfg.DatabaseDSN); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	router := NewRouter(cfg)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := http.ListenAndServe(cfg.Addr, corsHandler.Handler(router)); err != nil {
		log.Fatal().Err(err).Msg("app failed to start")
	}
}
