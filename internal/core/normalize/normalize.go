// Package normalize folds user supplied filter values into comparable keys
// Pipeline order
// 1 drop invalid UTF-8 and control characters
// 2 Unicode NFKC normalization
// 3 Case folding
// 4 Width fold fullwidth to ASCII
// 5 Collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains, a chain is not safe for concurrent use
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFKC, cases.Fold(), width.Fold)
	},
}

// Key returns the folded form of s used to match company and product filters
// "  ACME   Bank " and "acme bank" share a key
func Key(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(ns), " ")
}

// Keys folds every value and drops the ones that fold to empty, order is kept and duplicates removed
func Keys(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		k := Key(s)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
