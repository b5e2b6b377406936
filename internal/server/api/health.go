package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type healthOutput struct {
	Body struct {
		Status string `json:"status" example:"OK" doc:"Health status of the service"`
	}
}

type HealthHandler struct {
	middleware huma.Middlewares
}

func NewHealthHandler(mws huma.Middlewares) *HealthHandler {
	return &HealthHandler{middleware: mws}
}

func (h *HealthHandler) SetupRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check endpoint",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}, h.healthCheck)
}

func (h *HealthHandler) healthCheck(_ context.Context, _ *struct{}) (*healthOutput, error) {
	out := &healthOutput{}
	out.Body.Status = "OK"
	return out, nil
}
