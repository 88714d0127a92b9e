package service

import (
	"complaints/internal/core/displaystate"
	"complaints/internal/core/resultstate"
	"complaints/internal/platform/logger"
	"complaints/internal/platform/metrics"
)

// LogBannerChanges logs every transition of the freshness banner at info
func LogBannerChanges(log *logger.Logger) resultstate.Listener {
	return resultstate.OnChange(func(prev, next displaystate.Variant, st resultstate.State) {
		ev := log.Info().
			Str("from", prev.Kind.String()).
			Str("to", next.Kind.String())
		if !st.LastIndexed.IsZero() {
			ev = ev.Time("last_indexed", st.LastIndexed)
		}
		ev.Msg("results banner changed")
	})
}

// GaugeBanner mirrors the current banner into the panel gauge
func GaugeBanner() resultstate.Listener {
	return func(_ resultstate.State, v displaystate.Variant) { metrics.SetBanner(v.Kind) }
}
