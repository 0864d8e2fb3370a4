package textutil_test

import (
	"testing"

	"reframe/internal/textutil"
)

func TestCollapseSpace(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "already clean", in: "ckt template 90x90 light", want: "ckt template 90x90 light"},
		{name: "runs of spaces", in: "ckt   template  90x90", want: "ckt template 90x90"},
		{name: "tabs and newlines", in: "ckt\ttemplate\n90x90", want: "ckt template 90x90"},
		{name: "leading and trailing", in: "  ckt template  ", want: "ckt template"},
		{name: "non-breaking space", in: "ckt template", want: "ckt template"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \t \n ", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := textutil.CollapseSpace(tc.in); got != tc.want {
				t.Fatalf("CollapseSpace(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNFCFoldsDecomposedForms(t *testing.T) {
	// "é" spelled as e + combining acute (NFD) must fold to the single rune.
	decomposed := "aquarellé"
	composed := "aquarellé"
	if got := textutil.NFC(decomposed); got != composed {
		t.Fatalf("NFC(%q) = %q, want %q", decomposed, got, composed)
	}
	if got := textutil.NFC(composed); got != composed {
		t.Fatalf("NFC must leave composed input unchanged, got %q", got)
	}
	if got := textutil.NFC("plain ascii 90x90"); got != "plain ascii 90x90" {
		t.Fatalf("NFC must leave ASCII unchanged, got %q", got)
	}
}
