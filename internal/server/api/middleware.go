package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/auth"
)

// accessLog logs one line per request after it has been handled.
func accessLog(logger logging.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		method := ctx.Method()
		path := ctx.URL().Path

		next(ctx)

		logger.Info(ctx.Context(), "HTTP request",
			"method", method,
			"path", path,
			"status", ctx.Status(),
			"duration", time.Since(start),
			"remote_addr", ctx.RemoteAddr(),
		)
	}
}

// bearerAuth verifies the Authorization header and stores the token subject
// in the request context. Requests without a valid token get 401.
func bearerAuth(api huma.API, secretKey []byte, logger logging.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing token")
			return
		}

		subject, err := auth.GetSubjectFromToken(token, secretKey)
		if err != nil {
			logger.Debug(ctx.Context(), "token rejected", "error", err)
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid token")
			return
		}

		next(huma.WithContext(ctx, auth.WithSubject(ctx.Context(), subject)))
	}
}
