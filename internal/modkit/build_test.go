package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"complaints/internal/modkit/httpkit"
	phttp "complaints/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestBuild_Defaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" || len(b.Mw) != 0 || b.Ports != nil {
		t.Fatalf("unexpected defaults %+v", b)
	}
}

func TestBuild_OptionsApplyInOrder(t *testing.T) {
	type ports struct{ N int }
	mw := func(next http.Handler) http.Handler { return next }
	b := Build(
		WithName("results"),
		WithPrefix("/results"),
		WithName("results2"),
		WithMiddlewares(mw),
		WithMiddlewares(mw),
		WithPorts(ports{N: 3}),
	)
	if b.Name != "results2" || b.Prefix != "/results" {
		t.Fatalf("later options should win: %+v", b)
	}
	if len(b.Mw) != 2 {
		t.Fatalf("middlewares should accumulate, got %d", len(b.Mw))
	}
	if p, ok := b.Ports.(ports); !ok || p.N != 3 {
		t.Fatalf("ports = %#v", b.Ports)
	}
}

func TestMount_ModuleMiddlewareWrapsRoutes(t *testing.T) {
	var order []string
	b := Build(
		WithPrefix("/results"),
		WithMiddlewares(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "mw")
				next.ServeHTTP(w, r)
			})
		}),
	)

	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), b, func(r httpkit.Router) {
		r.Get("/status", func(http.ResponseWriter, *http.Request) { order = append(order, "handler") })
	})

	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/results/status", nil))
	rr2 := httptest.NewRecorder()
	m.ServeHTTP(rr2, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rr.Code != http.StatusOK || rr2.Code != http.StatusNotFound {
		t.Fatalf("codes = %d %d", rr.Code, rr2.Code)
	}
	if len(order) != 2 || order[0] != "mw" || order[1] != "handler" {
		t.Fatalf("order = %v", order)
	}
}
