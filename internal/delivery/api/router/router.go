// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fitplan/internal/delivery/api/middleware"
	"fitplan/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ExerciseHandler *handler.ExerciseHandler
	WorkoutHandler  *handler.WorkoutHandler
	ProfileHandler  *handler.ProfileHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	exerciseHandler *handler.ExerciseHandler
	workoutHandler  *handler.WorkoutHandler
	profileHandler  *handler.ProfileHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		exerciseHandler: params.ExerciseHandler,
		workoutHandler:  params.WorkoutHandler,
		profileHandler:  params.ProfileHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Public auth routes
	e.POST("/api/auth/google", r.authHandler.LoginWithGoogle)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate) // Every other /api route requires a caller

	api.GET("/auth/user", r.authHandler.GetCurrentUser)

	exercisesGroup := api.Group("/exercises")
	{
		exercisesGroup.GET("", r.exerciseHandler.ListExercises)
		exercisesGroup.GET("/:id", r.exerciseHandler.GetExercise)
	}

	workoutsGroup := api.Group("/workouts")
	{
		// Static segments before :id
		workoutsGroup.GET("/favorites", r.workoutHandler.ListFavorites)
		workoutsGroup.GET("/completed", r.workoutHandler.ListCompleted)
		workoutsGroup.GET("/next", r.workoutHandler.GetNextWorkout)
		workoutsGroup.GET("/popular", r.workoutHandler.ListPopular)

		workoutsGroup.GET("", r.workoutHandler.ListWorkouts)
		workoutsGroup.POST("", r.workoutHandler.CreateWorkout)
		workoutsGroup.GET("/:id", r.workoutHandler.GetWorkout)
		workoutsGroup.PATCH("/:id", r.workoutHandler.UpdateWorkout)
		workoutsGroup.PUT("/:id", r.workoutHandler.UpdateWorkout)
		workoutsGroup.DELETE("/:id", r.workoutHandler.DeleteWorkout)
		workoutsGroup.GET("/:id/exercises", r.workoutHandler.ListWorkoutExercises)
		workoutsGroup.GET("/:id/qr", r.workoutHandler.GetWorkoutQRCode)
	}

	profileGroup := api.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
	}

	api.GET("/progress/weekly", r.profileHandler.GetWeeklyProgress)
}
