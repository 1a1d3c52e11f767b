package container

import (
	"context"
	"log"
	"os"

	"github.com/bunec-crvs/learning-api/internal/auth"
	"github.com/bunec-crvs/learning-api/internal/certification"
	"github.com/bunec-crvs/learning-api/internal/config"
	"github.com/bunec-crvs/learning-api/internal/course"
	"github.com/bunec-crvs/learning-api/internal/evaluation"
	"github.com/bunec-crvs/learning-api/internal/exercise"
	"github.com/bunec-crvs/learning-api/internal/progress"
	"github.com/bunec-crvs/learning-api/internal/user"
)

type Container struct {
	UserContainer          *user.UserContainer
	CourseContainer        *course.CourseContainer
	ProgressContainer      *progress.ProgressContainer
	EvaluationContainer    *evaluation.EvaluationContainer
	CertificationContainer *certification.CertificationContainer
	ExerciseContainer      *exercise.ExerciseContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&course.Course{},
		&course.Module{},
		&course.Lesson{},
		&progress.LessonProgress{},
		&evaluation.EvaluationLevel{},
		&evaluation.EvaluationQuestion{},
		&evaluation.EvaluationChoice{},
		&evaluation.Attempt{},
		&evaluation.AttemptAnswer{},
		&certification.Certification{},
		&exercise.Exercise{},
		&exercise.Choice{},
		&exercise.UserExerciseAttempt{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	courseContainer := course.NewCourseContainer(config.DB)
	progressContainer := progress.NewProgressContainer(config.DB, courseContainer.Repo)
	certificationContainer := certification.NewCertificationContainer(config.DB)
	exerciseContainer := exercise.NewExerciseContainer(config.DB)

	evaluationContainer := evaluation.NewEvaluationContainer(
		config.DB,
		progressContainer.Service,
		certificationContainer.Service,
	)

	return &Container{
		UserContainer:          userContainer,
		CourseContainer:        courseContainer,
		ProgressContainer:      progressContainer,
		EvaluationContainer:    evaluationContainer,
		CertificationContainer: certificationContainer,
		ExerciseContainer:      exerciseContainer,
	}
}
