package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "complaints/internal/platform/errors"
	"complaints/internal/platform/logger"
	pnet "complaints/internal/platform/net"
	phttp "complaints/internal/platform/net/http"
)

// RecoverJSON turns a handler panic into the standard 500 envelope and logs the stack
// http.ErrAbortHandler is re-raised so the server can drop the connection
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}

			logger.C(r.Context()).Error().
				Interface("panic", v).
				Str("stack", string(debug.Stack())).
				Msg("panic recovered")

			if id := pnet.RequestID(r.Context()); id != "" {
				w.Header().Set("X-Request-ID", id)
			}
			phttp.RespondError(w, r, perr.New(perr.ErrorCodePanic, "panic recovered"))
		}()
		next.ServeHTTP(w, r)
	})
}
