package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/auth"
)

const maxImportBodyBytes = 64 << 20

type ImportHandler struct {
	importer   Importer
	logger     logging.Logger
	middleware huma.Middlewares
}

func NewImportHandler(importer Importer, logger logging.Logger, mws huma.Middlewares) *ImportHandler {
	return &ImportHandler{importer: importer, logger: logger, middleware: mws}
}

func (h *ImportHandler) SetupRoutes(api huma.API) {
	huma.Register(api, h.importOp(), h.importCiphers)
}

func (h *ImportHandler) importOp() huma.Operation {
	return huma.Operation{
		OperationID:   "ciphers-import",
		Method:        http.MethodPost,
		Path:          "/api/ciphers/import",
		Summary:       "Bulk import folders and ciphers",
		Description:   "Stores client-encrypted folders and ciphers for the token subject. Every cipher must be encrypted for that subject.",
		Tags:          []string{"ciphers"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusOK,
		MaxBodyBytes:  maxImportBodyBytes,
		Middlewares:   h.middleware,
	}
}

func (h *ImportHandler) importCiphers(ctx context.Context, input *importInput) (*struct{}, error) {
	owner, ok := auth.SubjectFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	if err := h.importer.Import(ctx, owner, input.Body.toModel()); err != nil {
		if common.IsClientFault(err) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		h.logger.Error(ctx, "import failed", "owner", owner, "error", err)
		return nil, huma.Error500InternalServerError("internal error")
	}

	return nil, nil
}
