package evaluation

import "gorm.io/gorm"

type EvaluationContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewEvaluationContainer(db *gorm.DB, gate CompletionGate, certs CertificateIssuer) *EvaluationContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, gate, certs)
	handler := NewHandler(service)

	return &EvaluationContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
