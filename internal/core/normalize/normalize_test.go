package normalize

import (
	"reflect"
	"testing"
)

func TestKey_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "empty", in: "", out: ""},
		{name: "identity ascii", in: "acme bank", out: "acme bank"},
		{name: "case fold", in: "ACME Bank", out: "acme bank"},
		{name: "collapse whitespace", in: "  Acme \t  Bank\n", out: "acme bank"},
		{name: "fullwidth", in: "ＡＣＭＥ", out: "acme"},
		{name: "drop controls", in: "ac\x00me\x7f", out: "acme"},
		{name: "invalid utf8", in: string([]byte{0xff, 'a', 'b', 0x80}), out: "ab"},
		{name: "sharp s folds", in: "STRASSE", out: "strasse"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Key(tc.in); got != tc.out {
				t.Fatalf("Key(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestKeys_DedupAndDropEmpty(t *testing.T) {
	got := Keys([]string{"Acme Bank", " ", "acme  bank", "Credit Card"})
	want := []string{"acme bank", "credit card"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys = %v, want %v", got, want)
	}
}

func TestKey_ConcurrentUse(t *testing.T) {
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				if Key("Ｂａｎｋ") != "bank" {
					t.Errorf("unexpected fold")
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
