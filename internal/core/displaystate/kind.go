package displaystate

import "fmt"

// Kind names one of the mutually exclusive panel banners
type Kind uint8

const (
	// KindNormal renders the item rows with no banner
	KindNormal Kind = iota
	// KindError shows the upstream error message
	KindError
	// KindDataStale warns that the results may not reflect the current data
	KindDataStale
	// KindNarrativeStale warns that narratives lag behind the records
	KindNarrativeStale
	// KindDataIssue flags a known quality problem in the dataset
	KindDataIssue
	// KindEmpty reports that the query matched nothing
	KindEmpty
)

var kindNames = [...]string{
	KindNormal:         "normal",
	KindError:          "error",
	KindDataStale:      "data_stale",
	KindNarrativeStale: "narrative_stale",
	KindDataIssue:      "data_issue",
	KindEmpty:          "empty",
}

// Kinds lists every kind in precedence order, highest first, with normal last
func Kinds() []Kind {
	return []Kind{KindError, KindDataStale, KindNarrativeStale, KindDataIssue, KindEmpty, KindNormal}
}

// String returns the wire name of the kind
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ShowsItems reports whether the rows are rendered under this kind
func (k Kind) ShowsItems() bool { return k == KindNormal }

// ParseKind maps a wire name back to a Kind
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return KindNormal, fmt.Errorf("displaystate: unknown kind %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("displaystate: invalid kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
