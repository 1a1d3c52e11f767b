package progress

import "gorm.io/gorm"

type ProgressContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewProgressContainer(db *gorm.DB, lessons LessonSource) *ProgressContainer {
	repo := NewRepository(db)
	service := NewService(repo, lessons)
	handler := NewHandler(service)

	return &ProgressContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
