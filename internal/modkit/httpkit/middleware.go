package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"complaints/internal/platform/config"
	"complaints/internal/platform/net/middleware"
)

// CommonStack returns the baseline middleware for the versioned API
// reads CORS_ORIGINS, SLOW_REQUEST and REQUEST_TIMEOUT from cfg
func CommonStack(cfg config.Conf) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.BindRequestLogger,

		middleware.RecoverJSON,

		middleware.NoCache(),

		middleware.AccessLogZerolog(middleware.AccessLogOptions{
			Slow: cfg.MayDuration("SLOW_REQUEST", time.Second),
		}),

		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second)),
	}
}
