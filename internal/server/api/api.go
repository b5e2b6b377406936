// Package api exposes the HTTP interface of the server:
//
//	GET  /api/health          # liveness (public)
//	POST /api/ciphers/import  # bulk vault import (bearer auth)
package api

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// Importer persists an import bundle for an authenticated owner.
type Importer interface {
	Import(ctx context.Context, ownerID string, req *models.ImportRequest) error
}

// New builds a chi router with every operation registered through huma.
func New(importer Importer, secretKey string, logger logging.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Vaultkeeper API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}

	Register(humachi.New(mux, config), importer, []byte(secretKey), logger)

	return mux
}

// Register adds all operations to api.
func Register(api huma.API, importer Importer, secretKey []byte, logger logging.Logger) {
	logger = logger.With("module", "http")
	access := accessLog(logger)
	authn := bearerAuth(api, secretKey, logger)

	NewHealthHandler(huma.Middlewares{access}).SetupRoutes(api)
	NewImportHandler(importer, logger, huma.Middlewares{access, authn}).SetupRoutes(api)
}
