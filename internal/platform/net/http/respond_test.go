package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "complaints/internal/platform/errors"
	lumnet "complaints/internal/platform/net"
)

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v body=%s", err, rr.Body.String())
	}
	return env
}

func TestHandle_OKEnvelope(t *testing.T) {
	h := Handle(func(*http.Request) Response { return OK(map[string]int{"total": 1}) })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(lumnet.WithRequest(req.Context(), "req-1"))
	rr := httptest.NewRecorder()
	h(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", ct)
	}
	env := decodeEnvelope(t, rr)
	if env.StatusCode != 200 || env.Status != "OK" || env.RequestID != "req-1" {
		t.Fatalf("bad envelope %+v", env)
	}
	if m, ok := env.Data.(map[string]any); !ok || m["total"] != float64(1) {
		t.Fatalf("data = %#v", env.Data)
	}
}

func TestHandle_ErrorEnvelope(t *testing.T) {
	err := perr.WithField(perr.Newf(perr.ErrorCodeValidation, "size must be at most 100"), "size")
	h := Handle(func(*http.Request) Response { return Error(err) })
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, "/", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	env := decodeEnvelope(t, rr)
	if env.Code != perr.ErrorCodeValidation || env.Error != "size must be at most 100" || env.Field != "size" {
		t.Fatalf("bad envelope %+v", env)
	}
	if env.Data != nil {
		t.Fatalf("errors carry no data")
	}
}

func TestHandle_NoContentAndHeaders(t *testing.T) {
	h := Handle(func(*http.Request) Response {
		resp := NoContent()
		resp.Header = http.Header{"X-Index": {"stale"}}
		return resp
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent || rr.Body.Len() != 0 {
		t.Fatalf("got %d body=%q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Index") != "stale" {
		t.Fatalf("header override lost")
	}
}

func TestRespondError_NotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, httptest.NewRequest(http.MethodGet, "/", nil), perr.NotFoundf("complaint %s not found", "9"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
	if env := decodeEnvelope(t, rr); env.Error != "complaint 9 not found" {
		t.Fatalf("bad envelope %+v", env)
	}
}

type echoIn struct {
	Size int `json:"size" validate:"min=1,max=100"`
}

func TestJSONHandler(t *testing.T) {
	h := JSONHandler(func(_ *http.Request, in echoIn) (any, error) {
		if in.Size == 13 {
			return nil, perr.Unavailablef("index offline")
		}
		return in, nil
	})

	cases := []struct {
		body string
		want int
	}{
		{`{"size":10}`, http.StatusOK},
		{`{"size":500}`, http.StatusBadRequest},
		{`{"size":`, http.StatusBadRequest},
		{`{"size":13}`, http.StatusServiceUnavailable},
	}
	for _, c := range cases {
		rr := httptest.NewRecorder()
		h(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(c.body)))
		if rr.Code != c.want {
			t.Fatalf("%s -> %d, want %d (%s)", c.body, rr.Code, c.want, rr.Body.String())
		}
	}
}
