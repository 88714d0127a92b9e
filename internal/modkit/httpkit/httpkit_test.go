package httpkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"complaints/internal/platform/config"
	perr "complaints/internal/platform/errors"
	phttp "complaints/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func applyStack(h http.Handler, stack []func(http.Handler) http.Handler) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	return h
}

func TestCommonStack_HealthAndRequestID(t *testing.T) {
	root := applyStack(http.NotFoundHandler(), CommonStack(config.New().Prefix("CORE_API_")))

	rr := httptest.NewRecorder()
	root.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("heartbeat = %d", rr.Code)
	}

	var seen string
	h := applyStack(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusNoContent)
	}), CommonStack(config.New().Prefix("CORE_API_")))
	req := httptest.NewRequest(http.MethodGet, "/results/status", nil)
	req.Header.Set("X-Request-Id", "abc")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent || seen != "abc" {
		t.Fatalf("code=%d seen=%q", rr.Code, seen)
	}
}

func TestCommonStack_RecoversPanics(t *testing.T) {
	h := applyStack(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }),
		CommonStack(config.New().Prefix("CORE_API_")))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("panic not recovered: %d", rr.Code)
	}
}

func TestMountAPIV1_AndSugar(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)

	type in struct {
		Size int `json:"size" validate:"min=1,max=100"`
	}
	MountAPIV1(r, nil, func(api Router) {
		api.Route("/results", func(rr Router) {
			PostJSON(rr, "/echo", func(_ *http.Request, v in) (any, error) { return v, nil })
			Get(rr, "/complaint/{id}", func(req *http.Request) (any, error) {
				if Param(req, "id") == "missing" {
					return nil, perr.NotFoundf("complaint not found")
				}
				return Param(req, "id"), nil
			})
			Get(rr, "/custom", func(*http.Request) (any, error) {
				return phttp.Response{Status: http.StatusAccepted, Body: "queued"}, nil
			})
		})
	})

	cases := []struct {
		method, path, body string
		want               int
		contains           string
	}{
		{http.MethodPost, "/api/v1/results/echo", `{"size":5}`, http.StatusOK, `"size":5`},
		{http.MethodPost, "/api/v1/results/echo", `{"size":500}`, http.StatusBadRequest, `"field":"size"`},
		{http.MethodGet, "/api/v1/results/complaint/1", "", http.StatusOK, `"data":"1"`},
		{http.MethodGet, "/api/v1/results/complaint/missing", "", http.StatusNotFound, "complaint not found"},
		{http.MethodGet, "/api/v1/results/custom", "", http.StatusAccepted, "queued"},
	}
	for _, c := range cases {
		rr := httptest.NewRecorder()
		m.ServeHTTP(rr, httptest.NewRequest(c.method, c.path, strings.NewReader(c.body)))
		if rr.Code != c.want || !strings.Contains(rr.Body.String(), c.contains) {
			t.Fatalf("%s %s -> %d %s", c.method, c.path, rr.Code, rr.Body.String())
		}
	}
}
