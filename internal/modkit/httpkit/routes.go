package httpkit

import (
	"net/http"

	phttp "complaints/internal/platform/net/http"
)

// APIV1 is the prefix every module route is served under
const APIV1 = "/api/v1"

// MountAPIV1 scopes mw to /api/v1 and lets mount register routes there
//
//	httpkit.MountAPIV1(r, httpkit.CommonStack(cfg), func(api httpkit.Router) {
//	  results.MountRoutes(api)
//	})
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(APIV1, func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// PostJSON mounts a validated JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}
