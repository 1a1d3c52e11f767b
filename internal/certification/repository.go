package certification

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunec-crvs/learning-api/internal/course"
)

type Repository interface {
	Create(cert *Certification) error
	FindByKey(userID, courseID uuid.UUID, level course.Level) (*Certification, error)
	FindByID(id uuid.UUID) (*Certification, error)
	FindByCode(code string) (*Certification, error)
	UpdatePDFPath(id uuid.UUID, path string) error
	ListValidByUser(userID uuid.UUID) ([]Certification, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(cert *Certification) error {
	return r.db.Create(cert).Error
}

func (r *repository) FindByKey(userID, courseID uuid.UUID, level course.Level) (*Certification, error) {
	var cert Certification
	err := r.db.
		Where("user_id = ? AND course_id = ? AND level = ?", userID, courseID, level).
		First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cert, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Certification, error) {
	var cert Certification
	err := r.db.
		Preload("User").
		Preload("Course").
		First(&cert, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cert, nil
}

func (r *repository) FindByCode(code string) (*Certification, error) {
	var cert Certification
	err := r.db.
		Preload("User").
		Preload("Course").
		First(&cert, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cert, nil
}

func (r *repository) UpdatePDFPath(id uuid.UUID, path string) error {
	return r.db.Model(&Certification{}).
		Where("id = ?", id).
		Update("pdf_path", path).Error
}

func (r *repository) ListValidByUser(userID uuid.UUID) ([]Certification, error) {
	var certs []Certification
	err := r.db.
		Preload("Course").
		Where("user_id = ? AND is_valid = ?", userID, true).
		Order("issued_at DESC").
		Find(&certs).Error
	if err != nil {
		return nil, err
	}
	return certs, nil
}
