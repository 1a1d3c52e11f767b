package course

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bunec-crvs/learning-api/internal/config"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrModuleNotFound = errors.New("module not found")
	ErrInvalidLevel   = errors.New("invalid level")
)

type Service interface {
	Create(ctx context.Context, dto CreateCourseDTO) (*Course, error)
	Get(ctx context.Context, id uuid.UUID) (*Course, error)
	List(ctx context.Context) ([]Course, error)
	AddModule(ctx context.Context, courseID uuid.UUID, dto CreateModuleDTO) (*Module, error)
	AddLesson(ctx context.Context, moduleID uuid.UUID, dto CreateLessonDTO) (*Lesson, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateCourseDTO) (*Course, error) {
	log := config.WithContext(ctx)

	c := &Course{
		Title:       dto.Title,
		Description: dto.Description,
	}
	if err := s.repo.Create(c); err != nil {
		log.WithError(err).Error("Failed to create course")
		return nil, err
	}

	log.WithField("course_id", c.ID.String()).Info("Course created")
	return c, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Course, error) {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

func (s *service) List(ctx context.Context) ([]Course, error) {
	return s.repo.FindAll()
}

func (s *service) AddModule(ctx context.Context, courseID uuid.UUID, dto CreateModuleDTO) (*Module, error) {
	log := config.WithContext(ctx)

	if !dto.Level.IsValid() {
		return nil, ErrInvalidLevel
	}

	c, err := s.repo.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}

	m := &Module{
		CourseID:    c.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Level:       dto.Level,
		Order:       dto.Order,
	}
	if err := s.repo.AddModule(m); err != nil {
		log.WithError(err).Error("Failed to add module")
		return nil, err
	}
	return m, nil
}

func (s *service) AddLesson(ctx context.Context, moduleID uuid.UUID, dto CreateLessonDTO) (*Lesson, error) {
	log := config.WithContext(ctx)

	m, err := s.repo.FindModuleByID(moduleID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrModuleNotFound
	}

	l := &Lesson{
		ModuleID:    m.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Order:       dto.Order,
		IsActive:    true,
	}
	if err := s.repo.AddLesson(l); err != nil {
		log.WithError(err).Error("Failed to add lesson")
		return nil, err
	}
	return l, nil
}
