package resultstate

// Action is a state transition request
type Action interface{ isAction() }

// SearchStarted marks a new search in flight
type SearchStarted struct{ Query Query }

// SearchSucceeded records the counts of a finished search
type SearchSucceeded struct {
	Items    int
	Total    int
	DocCount int
}

// SearchFailed records an upstream failure as a displayable message
type SearchFailed struct{ Message string }

// FreshnessChanged replaces the dataset quality flags
type FreshnessChanged struct{ Freshness Freshness }

func (SearchStarted) isAction()    {}
func (SearchSucceeded) isAction()  {}
func (SearchFailed) isAction()     {}
func (FreshnessChanged) isAction() {}

// Reduce derives the next state, it never mutates prev
// unknown actions return prev unchanged
func Reduce(prev State, a Action) State {
	next := prev
	switch act := a.(type) {
	case SearchStarted:
		next.Query = act.Query
		next.Loading = true
		next.Snapshot.Error = ""
	case SearchSucceeded:
		next.Loading = false
		next.Snapshot.Error = ""
		next.Snapshot.ItemCount = act.Items
		next.Snapshot.Total = act.Total
		next.Snapshot.DocCount = act.DocCount
	case SearchFailed:
		next.Loading = false
		next.Snapshot.Error = act.Message
		next.Snapshot.ItemCount = 0
		next.Snapshot.Total = 0
	case FreshnessChanged:
		next.Snapshot.IsDataStale = act.Freshness.IsDataStale
		next.Snapshot.IsNarrativeStale = act.Freshness.IsNarrativeStale
		next.Snapshot.HasDataIssue = act.Freshness.HasDataIssue
		next.LastIndexed = act.Freshness.LastIndexed
	}
	return next
}
