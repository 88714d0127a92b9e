package displaystate

import (
	"encoding/json"
	"testing"
)

func TestResolve_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		in   Snapshot
		want Variant
	}{
		{"renders rows", Snapshot{ItemCount: 1, Total: 1, DocCount: 100}, Normal},
		{"no results", Snapshot{DocCount: 100}, Variant{Kind: KindEmpty}},
		{"error", Snapshot{Error: "oops!", DocCount: 100}, Variant{Kind: KindError, Message: "oops!"}},
		{"data stale", Snapshot{ItemCount: 1, Total: 1, IsDataStale: true}, Variant{Kind: KindDataStale}},
		{"narrative stale", Snapshot{ItemCount: 1, Total: 1, IsNarrativeStale: true}, Variant{Kind: KindNarrativeStale}},
		{"both stale", Snapshot{ItemCount: 1, Total: 1, IsDataStale: true, IsNarrativeStale: true}, Variant{Kind: KindDataStale}},
		{"data issue", Snapshot{ItemCount: 1, Total: 1, HasDataIssue: true}, Variant{Kind: KindDataIssue}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.in); got != tc.want {
				t.Fatalf("Resolve(%+v) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

// every combination of flags, item presence and error presence
func allSnapshots() []Snapshot {
	var out []Snapshot
	for mask := 0; mask < 1<<5; mask++ {
		s := Snapshot{
			HasDataIssue:     mask&1 != 0,
			IsDataStale:      mask&2 != 0,
			IsNarrativeStale: mask&4 != 0,
			Total:            7,
			DocCount:         100,
		}
		if mask&8 != 0 {
			s.ItemCount = 3
		}
		if mask&16 != 0 {
			s.Error = "upstream failed"
		}
		out = append(out, s)
	}
	return out
}

func TestResolve_Precedence(t *testing.T) {
	for _, s := range allSnapshots() {
		got := Resolve(s)
		var want Kind
		switch {
		case s.Error != "":
			want = KindError
		case s.IsDataStale:
			want = KindDataStale
		case s.IsNarrativeStale:
			want = KindNarrativeStale
		case s.HasDataIssue:
			want = KindDataIssue
		case s.ItemCount == 0:
			want = KindEmpty
		default:
			want = KindNormal
		}
		if got.Kind != want {
			t.Fatalf("Resolve(%+v).Kind = %s, want %s", s, got.Kind, want)
		}
		if want == KindError && got.Message != s.Error {
			t.Fatalf("error message not passed through: %q", got.Message)
		}
		if want != KindError && got.Message != "" {
			t.Fatalf("unexpected message %q for %s", got.Message, got.Kind)
		}
	}
}

func TestResolve_ExactlyOneRuleFiresFirst(t *testing.T) {
	for _, s := range allSnapshots() {
		got := Resolve(s)
		first := KindNormal
		for _, r := range Rules() {
			if r.Match(s) {
				first = r.Kind
				break
			}
		}
		if got.Kind != first {
			t.Fatalf("resolve disagrees with rule list for %+v: %s vs %s", s, got.Kind, first)
		}
	}
}

func TestResolve_IgnoresCounts(t *testing.T) {
	base := Snapshot{ItemCount: 2, IsNarrativeStale: true}
	for _, total := range []int{0, 2, 5000} {
		for _, docs := range []int{0, 1, 1 << 20} {
			s := base
			s.Total, s.DocCount = total, docs
			if got := Resolve(s); got.Kind != KindNarrativeStale {
				t.Fatalf("total=%d doc_count=%d changed outcome to %s", total, docs, got.Kind)
			}
		}
	}
}

func TestResolve_ErrorMasksItems(t *testing.T) {
	got := Resolve(Snapshot{ItemCount: 10, Total: 10, Error: "timeout"})
	if got.Kind != KindError || got.Kind.ShowsItems() {
		t.Fatalf("expected error banner without rows, got %+v", got)
	}
}

func TestRules_CopyIsIsolated(t *testing.T) {
	rs := Rules()
	rs[0] = Rule{Kind: KindEmpty, Match: func(Snapshot) bool { return true }}
	if got := Resolve(Snapshot{ItemCount: 1}); got.Kind != KindNormal {
		t.Fatalf("mutating Rules() leaked into Resolve: %s", got.Kind)
	}
}

func TestFromItems(t *testing.T) {
	s := FromItems([]string{"a", "b"}, 9, 100)
	if s.ItemCount != 2 || s.Total != 9 || s.DocCount != 100 {
		t.Fatalf("bad snapshot %+v", s)
	}
	if Resolve(FromItems[int](nil, 0, 0)).Kind != KindEmpty {
		t.Fatalf("nil items should resolve empty")
	}
}

func TestKind_TextRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		b, err := json.Marshal(Variant{Kind: k})
		if err != nil {
			t.Fatalf("marshal %s: %v", k, err)
		}
		var v Variant
		if err := json.Unmarshal(b, &v); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if v.Kind != k {
			t.Fatalf("round trip %s -> %s", k, v.Kind)
		}
	}
	if _, err := ParseKind("loud"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if Kind(99).String() != "kind(99)" {
		t.Fatalf("unexpected String for out of range kind")
	}
	if _, err := Kind(99).MarshalText(); err == nil {
		t.Fatalf("expected marshal error for out of range kind")
	}
}

func TestKind_ShowsItems(t *testing.T) {
	for _, k := range Kinds() {
		if k.ShowsItems() != (k == KindNormal) {
			t.Fatalf("ShowsItems wrong for %s", k)
		}
	}
}
