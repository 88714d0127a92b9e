// Package displaystate decides which banner the results panel shows for a snapshot.
// Resolve is pure and total, it never fails and holds no state between calls
package displaystate

// Snapshot is the per-render state bundle the panel is drawn from
// Total and DocCount are informational and never change the outcome
type Snapshot struct {
	ItemCount        int    `json:"item_count"`
	Total            int    `json:"total"`
	DocCount         int    `json:"doc_count"`
	Error            string `json:"error,omitempty"`
	HasDataIssue     bool   `json:"has_data_issue"`
	IsDataStale      bool   `json:"is_data_stale"`
	IsNarrativeStale bool   `json:"is_narrative_stale"`
}

// FromItems builds a snapshot around an item slice of any record type
func FromItems[T any](items []T, total, docCount int) Snapshot {
	return Snapshot{ItemCount: len(items), Total: total, DocCount: docCount}
}

// Variant is the single banner chosen for a snapshot
// Message carries the snapshot error unchanged and is empty for every other kind
type Variant struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message,omitempty"`
}

// Normal is the zero banner
var Normal = Variant{Kind: KindNormal}

// Rule is one entry of the precedence list
type Rule struct {
	Kind  Kind
	Match func(Snapshot) bool
}

// rules is ordered highest precedence first, the first match wins
// data staleness sits above narrative staleness so both flags set yields data_stale only
var rules = []Rule{
	{Kind: KindError, Match: func(s Snapshot) bool { return s.Error != "" }},
	{Kind: KindDataStale, Match: func(s Snapshot) bool { return s.IsDataStale }},
	{Kind: KindNarrativeStale, Match: func(s Snapshot) bool { return s.IsNarrativeStale && !s.IsDataStale }},
	{Kind: KindDataIssue, Match: func(s Snapshot) bool { return s.HasDataIssue }},
	{Kind: KindEmpty, Match: func(s Snapshot) bool { return s.ItemCount <= 0 }},
}

// Rules returns a copy of the ordered precedence list
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Resolve maps a snapshot to exactly one variant
func Resolve(s Snapshot) Variant {
	for _, r := range rules {
		if !r.Match(s) {
			continue
		}
		if r.Kind == KindError {
			return Variant{Kind: KindError, Message: s.Error}
		}
		return Variant{Kind: r.Kind}
	}
	return Normal
}
