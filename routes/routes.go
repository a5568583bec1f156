package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/jenozu/fittrack-plus/controllers"
	"github.com/jenozu/fittrack-plus/middlewares"
	"github.com/jenozu/fittrack-plus/services"
	"github.com/jenozu/fittrack-plus/store"
)

// SetupRouter wires the services and controllers onto a gin engine. The
// summary cache is shared between the read path (dashboard) and the write
// path (entry CRUD) so every mutation invalidates before it returns.
func SetupRouter(db *gorm.DB, jwtSecret []byte, log zerolog.Logger) *gin.Engine {
	entryStore := store.NewGormStore(db)
	cache := services.NewMemorySummaryCache()

	summarySvc := services.NewSummaryService(entryStore, cache, log)
	streakSvc := services.NewStreakService(entryStore)
	rangeSvc := services.NewRangeService(entryStore, log)
	weightSvc := services.NewWeightService(db)
	foodSvc := services.NewFoodEntryService(db, cache, log)
	exerciseSvc := services.NewExerciseEntryService(db, cache, log)
	targetsSvc := services.NewTargetsService(db)
	authSvc := services.NewAuthService(db, jwtSecret)
	userSvc := services.NewUserService(db)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(userSvc)
	targetsCtl := controllers.NewTargetsController(targetsSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	exerciseCtl := controllers.NewExerciseController(exerciseSvc)
	dashboardCtl := controllers.NewDashboardController(summarySvc, streakSvc, rangeSvc, weightSvc)

	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	authed := middlewares.AuthMiddleware(jwtSecret)

	users := r.Group("/users")
	users.Use(authed)
	{
		users.GET("/me", userCtl.GetProfile)
		users.PUT("/me", userCtl.UpdateProfile)
		users.GET("/me/targets", targetsCtl.GetTargets)
		users.PUT("/me/targets", targetsCtl.UpdateTargets)
	}

	food := r.Group("/food")
	food.Use(authed)
	{
		food.POST("/entries", foodCtl.CreateEntry)
		food.GET("/entries", foodCtl.ListEntries)
		food.GET("/entries/:id", foodCtl.GetEntry)
		food.PUT("/entries/:id", foodCtl.UpdateEntry)
		food.DELETE("/entries/:id", foodCtl.DeleteEntry)
	}

	exercise := r.Group("/exercise")
	exercise.Use(authed)
	{
		exercise.POST("/entries", exerciseCtl.CreateEntry)
		exercise.GET("/entries", exerciseCtl.ListEntries)
		exercise.GET("/entries/:id", exerciseCtl.GetEntry)
		exercise.PUT("/entries/:id", exerciseCtl.UpdateEntry)
		exercise.DELETE("/entries/:id", exerciseCtl.DeleteEntry)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(authed)
	{
		dashboard.GET("/summary", dashboardCtl.GetDailySummary)
		dashboard.GET("/streak", dashboardCtl.GetStreak)
		dashboard.GET("/progress/calories", dashboardCtl.GetCalorieProgress)
		dashboard.GET("/progress/macros", dashboardCtl.GetMacroProgress)
		dashboard.GET("/weight", dashboardCtl.GetWeightLogs)
		dashboard.POST("/weight", dashboardCtl.LogWeight)
	}

	return r
}
