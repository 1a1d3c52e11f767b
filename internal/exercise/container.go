package exercise

import "gorm.io/gorm"

type ExerciseContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewExerciseContainer(db *gorm.DB) *ExerciseContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &ExerciseContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
