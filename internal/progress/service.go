package progress

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bunec-crvs/learning-api/internal/config"
	"github.com/bunec-crvs/learning-api/internal/course"
)

var ErrLessonNotFound = errors.New("lesson not found")

// LessonSource is the read-only slice of the course repository the gate
// needs.
type LessonSource interface {
	LessonIDsByLevel(courseID uuid.UUID, level course.Level) ([]uuid.UUID, error)
	FindLessonByID(id uuid.UUID) (*course.Lesson, error)
}

type Service interface {
	MarkLessonComplete(ctx context.Context, userID, lessonID uuid.UUID) error
	LevelCompletion(ctx context.Context, userID, courseID uuid.UUID, level course.Level) (*LevelCompletion, error)
}

type service struct {
	repo    Repository
	lessons LessonSource
}

func NewService(repo Repository, lessons LessonSource) Service {
	return &service{repo: repo, lessons: lessons}
}

func (s *service) MarkLessonComplete(ctx context.Context, userID, lessonID uuid.UUID) error {
	log := config.WithContext(ctx)

	lesson, err := s.lessons.FindLessonByID(lessonID)
	if err != nil {
		return err
	}
	if lesson == nil {
		return ErrLessonNotFound
	}

	if err := s.repo.MarkCompleted(userID, lessonID); err != nil {
		log.WithError(err).Error("Failed to record lesson completion")
		return err
	}
	return nil
}

// LevelCompletion is read-only. A level with zero lessons is reported
// incomplete so an empty level never unlocks its evaluation.
func (s *service) LevelCompletion(ctx context.Context, userID, courseID uuid.UUID, level course.Level) (*LevelCompletion, error) {
	lessonIDs, err := s.lessons.LessonIDsByLevel(courseID, level)
	if err != nil {
		return nil, err
	}

	total := len(lessonIDs)
	if total == 0 {
		return &LevelCompletion{}, nil
	}

	done64, err := s.repo.CountCompleted(userID, lessonIDs)
	if err != nil {
		return nil, err
	}
	done := int(done64)

	return &LevelCompletion{
		Total:     total,
		Done:      done,
		Percent:   int(float64(done) / float64(total) * 100),
		Completed: done == total,
	}, nil
}
