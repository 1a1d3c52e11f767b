package certification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunec-crvs/learning-api/internal/config"
	"github.com/bunec-crvs/learning-api/internal/course"
)

var ErrCertificationNotFound = errors.New("certification not found")

type Service interface {
	Issue(ctx context.Context, userID, courseID uuid.UUID, level course.Level, score float64) (*Certification, error)
	Verify(ctx context.Context, code string) (*VerificationDTO, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Certification, error)
}

type service struct {
	repo      Repository
	generator ArtifactGenerator
}

func NewService(repo Repository, generator ArtifactGenerator) Service {
	return &service{
		repo:      repo,
		generator: generator,
	}
}

// Issue gets-or-creates the certificate for (user, course, level). The
// create relies on the unique index: a concurrent passing submission that
// commits first surfaces as gorm.ErrDuplicatedKey here and we fetch its
// row instead, so the triple never yields two certificates. The PDF is
// generated once, for a row that has no artifact yet; a generation failure
// leaves the committed row without a file (see DESIGN.md).
func (s *service) Issue(ctx context.Context, userID, courseID uuid.UUID, level course.Level, score float64) (*Certification, error) {
	log := config.WithContext(ctx)

	cert, err := s.repo.FindByKey(userID, courseID, level)
	if err != nil {
		return nil, err
	}

	if cert == nil {
		cert = &Certification{
			UserID:   userID,
			CourseID: courseID,
			Level:    level,
			Code:     newCode(),
			IsValid:  true,
		}
		if err := s.repo.Create(cert); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				log.WithError(err).Error("Failed to create certification")
				return nil, err
			}
			// lost the race: reuse the row the other submission created
			cert, err = s.repo.FindByKey(userID, courseID, level)
			if err != nil {
				return nil, err
			}
			if cert == nil {
				return nil, fmt.Errorf("certification vanished after duplicate key for user %s", userID)
			}
		} else {
			log.WithField("certificate_code", cert.Code).Info("Certification issued")
		}
	}

	if cert.PDFPath == "" {
		// reload with user and course for the document content
		full, err := s.repo.FindByID(cert.ID)
		if err != nil {
			return nil, err
		}
		if full != nil {
			cert = full
		}

		path, err := s.generator.Generate(ctx, cert, score)
		if err != nil {
			log.WithError(err).
				WithField("certificate_code", cert.Code).
				Error("Certificate artifact generation failed")
			return nil, fmt.Errorf("certificate %s issued but artifact generation failed: %w", cert.Code, err)
		}
		if err := s.repo.UpdatePDFPath(cert.ID, path); err != nil {
			return nil, err
		}
		cert.PDFPath = path
	}

	return cert, nil
}

func (s *service) Verify(ctx context.Context, code string) (*VerificationDTO, error) {
	cert, err := s.repo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, ErrCertificationNotFound
	}

	return &VerificationDTO{
		Code:        cert.Code,
		HolderName:  cert.User.Name,
		CourseTitle: cert.Course.Title,
		Level:       cert.Level,
		IssuedAt:    cert.IssuedAt,
		IsValid:     cert.IsValid,
	}, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]Certification, error) {
	return s.repo.ListValidByUser(userID)
}
