package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"complaints/internal/core/displaystate"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Idempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))
	require.NoError(t, Register(reg))
}

func TestObserveSearch_CountsByKind(t *testing.T) {
	before := testutil.ToFloat64(bannersTotal.WithLabelValues("data_stale"))
	ObserveSearch(displaystate.KindDataStale, 20*time.Millisecond)
	ObserveSearch(displaystate.KindDataStale, -time.Second)
	assert.Equal(t, before+2, testutil.ToFloat64(bannersTotal.WithLabelValues("data_stale")))
}

func TestSetBanner_OnlyOneKindIsSet(t *testing.T) {
	SetBanner(displaystate.KindNarrativeStale)
	SetBanner(displaystate.KindDataIssue)
	for _, k := range displaystate.Kinds() {
		want := 0.0
		if k == displaystate.KindDataIssue {
			want = 1
		}
		assert.Equal(t, want, testutil.ToFloat64(banner.WithLabelValues(k.String())), k.String())
	}
}

func TestHandler_ServesPanelSeries(t *testing.T) {
	require.NoError(t, Register(prometheus.DefaultRegisterer))
	Recorder{}.SearchResolved(displaystate.KindNormal, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `complaints_panel_banners_total{kind="normal"}`))
}
