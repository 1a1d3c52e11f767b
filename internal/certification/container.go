package certification

import (
	"os"

	"gorm.io/gorm"
)

type CertificationContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewCertificationContainer(db *gorm.DB) *CertificationContainer {
	mediaRoot := os.Getenv("MEDIA_ROOT")
	if mediaRoot == "" {
		mediaRoot = "media"
	}
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	repo := NewRepository(db)
	service := NewService(repo, NewPDFGenerator(mediaRoot, baseURL))
	handler := NewHandler(service)

	return &CertificationContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
