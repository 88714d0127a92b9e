package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "complaints/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"trace":   "trace",
		"DEBUG":   "debug",
		"info":    "info",
		"warning": "warn",
		"error":   "error",
		"fatal":   "fatal",
		"panic":   "panic",
		"":        "info",
		" loud ":  "info",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Fatalf("parseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInit_NamedAndRequestScoped(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:        "info",
		Format:       "json",
		Service:      "complaints-api",
		Writer:       &buf,
		SampleEvery:  2,
		StaticFields: map[string]string{"build": "test"},
	})

	// resample to N=1 so every line is emitted
	nv := Named("freshness").Sample(&zerolog.BasicSampler{N: 1})
	np := &nv
	np.Info().Msg("named-msg")

	ctx := WithModule(WithRequest(context.Background(), "req-123"), "results")
	cv := C(ctx).Sample(&zerolog.BasicSampler{N: 1})
	cp := &cv
	cp.Info().Msg("ctx-msg")

	out := buf.String()
	kit.MustContain(t, out, `"component":"freshness"`)
	kit.MustContain(t, out, `"request_id":"req-123"`)
	kit.MustContain(t, out, `"module":"results"`)
	kit.MustContain(t, out, `"service":"complaints-api"`)
	kit.MustContain(t, out, `"build":"test"`)
}

func TestWithRequest_EmptyValuesLeaveContext(t *testing.T) {
	ctx := context.Background()
	if WithRequest(ctx, "") != ctx || WithModule(ctx, "") != ctx {
		t.Fatalf("empty values should not wrap the context")
	}
	if Named("") != Get() {
		t.Fatalf("Named(\"\") should return the root logger")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "complaints-api")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "5")
	t.Setenv("LOG_FIELDS", "region=eu,build=42")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" || opt.Service != "complaints-api" {
		t.Fatalf("FromEnv fields mismatch: %+v", opt)
	}
	if !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("FromEnv caller/sample mismatch: %+v", opt)
	}
	if opt.StaticFields["region"] != "eu" || opt.StaticFields["build"] != "42" {
		t.Fatalf("FromEnv static fields mismatch: %+v", opt.StaticFields)
	}
	if strings.Contains(opt.Component, " ") {
		t.Fatalf("unexpected component %q", opt.Component)
	}
}
