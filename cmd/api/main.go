package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/bunec-crvs/learning-api/internal/config"
	"github.com/bunec-crvs/learning-api/internal/container"
	"github.com/bunec-crvs/learning-api/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:          c.UserContainer.Handler,
		CourseHandler:        c.CourseContainer.Handler,
		ProgressHandler:      c.ProgressContainer.Handler,
		EvaluationHandler:    c.EvaluationContainer.Handler,
		CertificationHandler: c.CertificationContainer.Handler,
		ExerciseHandler:      c.ExerciseContainer.Handler,
	})

	log := config.WithContext(context.Background())

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("Listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
