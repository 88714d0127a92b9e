// Package resultstate holds the results panel state as a one-way data flow store
// actions go in through Dispatch, a pure reducer derives the next state, and
// subscribers observe every committed state together with its resolved banner
package resultstate

import (
	"time"

	"complaints/internal/core/displaystate"
)

// Query is the page window a search was issued for
type Query struct {
	From int `json:"from"`
	Size int `json:"size"`
	// Narratives is true when the page displays complaint narratives
	Narratives bool `json:"narratives"`
}

// Freshness carries the dataset quality flags published by the indexer
type Freshness struct {
	IsDataStale      bool      `json:"is_data_stale"`
	IsNarrativeStale bool      `json:"is_narrative_stale"`
	HasDataIssue     bool      `json:"has_data_issue"`
	LastIndexed      time.Time `json:"last_indexed"`
}

// Equal reports whether two freshness values carry the same flags and index time
func (f Freshness) Equal(o Freshness) bool {
	return f.IsDataStale == o.IsDataStale &&
		f.IsNarrativeStale == o.IsNarrativeStale &&
		f.HasDataIssue == o.HasDataIssue &&
		f.LastIndexed.Equal(o.LastIndexed)
}

// Banner is the banner a populated error free page gets under these flags
func (f Freshness) Banner() displaystate.Variant {
	return displaystate.Resolve(displaystate.Snapshot{
		ItemCount:        1,
		IsDataStale:      f.IsDataStale,
		IsNarrativeStale: f.IsNarrativeStale,
		HasDataIssue:     f.HasDataIssue,
	})
}

// State is the full panel state
type State struct {
	Query       Query
	Snapshot    displaystate.Snapshot
	Loading     bool
	LastIndexed time.Time
}

// Freshness extracts the quality flags from the state
func (s State) Freshness() Freshness {
	return Freshness{
		IsDataStale:      s.Snapshot.IsDataStale,
		IsNarrativeStale: s.Snapshot.IsNarrativeStale,
		HasDataIssue:     s.Snapshot.HasDataIssue,
		LastIndexed:      s.LastIndexed,
	}
}

// Variant resolves the banner for the current snapshot
func (s State) Variant() displaystate.Variant { return displaystate.Resolve(s.Snapshot) }
