package http

import (
	"net/http"

	"github.com/itsSauraj/recipe-api/internal/common/constants"
	"github.com/itsSauraj/recipe-api/internal/common/httpmetrics"
	"github.com/itsSauraj/recipe-api/internal/common/logger"
)

// BuildBaseHandler wraps the application mux with the middleware every
// request passes through, outermost first: recovery, trace id, body size cap,
// metrics.
func BuildBaseHandler(log *logger.Logger, handler http.Handler) http.Handler {
	recovery := RecoveryMiddleware(log)
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)

	return recovery(TraceIDMiddleware(maxRequestSize(httpmetrics.Middleware(handler))))
}
