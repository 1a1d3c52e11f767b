package course

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Course) error
	FindByID(id uuid.UUID) (*Course, error)
	FindAll() ([]Course, error)
	AddModule(m *Module) error
	FindModuleByID(id uuid.UUID) (*Module, error)
	AddLesson(l *Lesson) error
	FindLessonByID(id uuid.UUID) (*Lesson, error)
	LessonIDsByLevel(courseID uuid.UUID, level Level) ([]uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(c *Course) error {
	return r.db.Create(c).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Course, error) {
	var c Course
	err := r.db.
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("modules.order_index ASC")
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.order_index ASC")
		}).
		First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindAll() ([]Course, error) {
	var courses []Course
	if err := r.db.Order("created_at DESC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *repository) AddModule(m *Module) error {
	return r.db.Create(m).Error
}

func (r *repository) FindModuleByID(id uuid.UUID) (*Module, error) {
	var m Module
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) AddLesson(l *Lesson) error {
	return r.db.Create(l).Error
}

func (r *repository) FindLessonByID(id uuid.UUID) (*Lesson, error) {
	var l Lesson
	if err := r.db.First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// LessonIDsByLevel returns the active lessons of every module at the
// given level of a course. The completion gate counts against this set.
func (r *repository) LessonIDsByLevel(courseID uuid.UUID, level Level) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&Lesson{}).
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("modules.course_id = ? AND modules.level = ? AND lessons.is_active = ?", courseID, level, true).
		Pluck("lessons.id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
