package progress

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/bunec-crvs/learning-api/internal/course"
)

type stubLessonSource struct {
	lessonIDs []uuid.UUID
	lesson    *course.Lesson
}

func (s *stubLessonSource) LessonIDsByLevel(courseID uuid.UUID, level course.Level) ([]uuid.UUID, error) {
	return s.lessonIDs, nil
}

func (s *stubLessonSource) FindLessonByID(id uuid.UUID) (*course.Lesson, error) {
	return s.lesson, nil
}

type stubProgressRepo struct {
	completed int64
	marked    []uuid.UUID
}

func (s *stubProgressRepo) MarkCompleted(userID, lessonID uuid.UUID) error {
	s.marked = append(s.marked, lessonID)
	return nil
}

func (s *stubProgressRepo) CountCompleted(userID uuid.UUID, lessonIDs []uuid.UUID) (int64, error) {
	return s.completed, nil
}

func makeIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestLevelCompletion(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	courseID := uuid.New()

	t.Run("EmptyLevelIsNeverCompleted", func(t *testing.T) {
		svc := NewService(&stubProgressRepo{completed: 0}, &stubLessonSource{lessonIDs: nil})

		comp, err := svc.LevelCompletion(ctx, userID, courseID, course.LevelBeginner)
		if err != nil {
			t.Fatalf("LevelCompletion failed: %v", err)
		}
		if comp.Completed {
			t.Error("A level with zero lessons must not be reported as completed")
		}
		if comp.Total != 0 || comp.Done != 0 || comp.Percent != 0 {
			t.Errorf("Expected empty summary, got %+v", comp)
		}
	})

	t.Run("PartialProgress", func(t *testing.T) {
		svc := NewService(&stubProgressRepo{completed: 1}, &stubLessonSource{lessonIDs: makeIDs(4)})

		comp, err := svc.LevelCompletion(ctx, userID, courseID, course.LevelBeginner)
		if err != nil {
			t.Fatalf("LevelCompletion failed: %v", err)
		}
		if comp.Completed {
			t.Error("Partial progress must not unlock the level")
		}
		if comp.Total != 4 || comp.Done != 1 || comp.Percent != 25 {
			t.Errorf("Unexpected summary: %+v", comp)
		}
	})

	t.Run("AllLessonsDone", func(t *testing.T) {
		svc := NewService(&stubProgressRepo{completed: 3}, &stubLessonSource{lessonIDs: makeIDs(3)})

		comp, err := svc.LevelCompletion(ctx, userID, courseID, course.LevelAdvanced)
		if err != nil {
			t.Fatalf("LevelCompletion failed: %v", err)
		}
		if !comp.Completed {
			t.Error("All lessons done should complete the level")
		}
		if comp.Percent != 100 {
			t.Errorf("Expected 100 percent, got %d", comp.Percent)
		}
	})
}

func TestMarkLessonComplete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	lessonID := uuid.New()

	t.Run("UnknownLesson", func(t *testing.T) {
		svc := NewService(&stubProgressRepo{}, &stubLessonSource{lesson: nil})

		if err := svc.MarkLessonComplete(ctx, userID, lessonID); err != ErrLessonNotFound {
			t.Errorf("Expected ErrLessonNotFound, got %v", err)
		}
	})

	t.Run("KnownLesson", func(t *testing.T) {
		repo := &stubProgressRepo{}
		svc := NewService(repo, &stubLessonSource{lesson: &course.Lesson{ID: lessonID}})

		if err := svc.MarkLessonComplete(ctx, userID, lessonID); err != nil {
			t.Fatalf("MarkLessonComplete failed: %v", err)
		}
		if len(repo.marked) != 1 || repo.marked[0] != lessonID {
			t.Errorf("Completion was not recorded for the lesson: %v", repo.marked)
		}
	})
}
