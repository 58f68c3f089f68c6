package httpapi

import (
	"net/http"

	"github.com/riskibarqy/campus-league/internal/platform/logging"
)

// NewRouter wires every route behind tracing, metrics, logging, CORS and
// panic recovery, in that order from the outside in. A nil metrics disables
// both the instrumentation and the /metrics route.
func NewRouter(
	handler *Handler,
	authorizer Authorizer,
	logger *logging.Logger,
	corsAllowedOrigins []string,
	metrics *Metrics,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, metrics)
	registerPublicRoutes(mux, handler)
	registerAdminRoutes(mux, handler, authorizer)

	var root http.Handler = RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux)))
	if metrics != nil {
		root = metrics.Instrument(mux, root)
	}
	return RequestTracing(root)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
