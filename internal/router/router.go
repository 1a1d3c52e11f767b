package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/bunec-crvs/learning-api/internal/auth"
	"github.com/bunec-crvs/learning-api/internal/certification"
	"github.com/bunec-crvs/learning-api/internal/course"
	"github.com/bunec-crvs/learning-api/internal/evaluation"
	"github.com/bunec-crvs/learning-api/internal/exercise"
	"github.com/bunec-crvs/learning-api/internal/middlewares"
	"github.com/bunec-crvs/learning-api/internal/progress"
	"github.com/bunec-crvs/learning-api/internal/user"
)

type RouterConfig struct {
	UserHandler          *user.Handler
	CourseHandler        *course.Handler
	ProgressHandler      *progress.Handler
	EvaluationHandler    *evaluation.Handler
	CertificationHandler *certification.Handler
	ExerciseHandler      *exercise.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	// public, so scanned QR codes resolve without a session
	r.Get("/certifications/verify/{code}", cfg.CertificationHandler.Verify)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/courses", course.Routes(cfg.CourseHandler))
		r.Mount("/evaluations", evaluation.Routes(cfg.EvaluationHandler))
		r.Mount("/certifications", certification.Routes(cfg.CertificationHandler))
		r.Mount("/exercises", exercise.Routes(cfg.ExerciseHandler))

		r.Post("/modules/{moduleID}/lessons", cfg.CourseHandler.AddLesson)
		r.Post("/lessons/{lessonID}/complete", cfg.ProgressHandler.MarkLessonComplete)
		r.Get("/lessons/{lessonID}/exercises", cfg.ExerciseHandler.ListByLesson)
		r.Get("/courses/{courseID}/levels/{level}/completion", cfg.ProgressHandler.LevelCompletion)
		r.Get("/courses/{courseID}/evaluations/{level}", cfg.EvaluationHandler.StartEvaluation)
		r.Post("/courses/{courseID}/evaluations/{level}/submit", cfg.EvaluationHandler.SubmitEvaluation)
	})

	return r
}
