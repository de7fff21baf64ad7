package engine

import (
	"testing"

	"github.com/powerscan/powerscan/internal/catalog"
	"github.com/powerscan/powerscan/internal/types"
)

func TestFingerprint(t *testing.T) {
	cat := catalog.Default()
	files := []types.SourceFile{{Name: "a.js", Content: []byte("eval(x)")}}

	a := Fingerprint(cat, files)
	b := Fingerprint(cat, files)
	if a != b {
		t.Fatal("identical inputs must fingerprint identically")
	}
	if len(a) != 16 {
		t.Fatalf("fingerprint length %d, want 16 hex digits", len(a))
	}

	changed := Fingerprint(cat, []types.SourceFile{{Name: "a.js", Content: []byte("eval(y)")}})
	if changed == a {
		t.Fatal("changed content must change the fingerprint")
	}
	renamed := Fingerprint(cat, []types.SourceFile{{Name: "b.js", Content: []byte("eval(x)")}})
	if renamed == a {
		t.Fatal("changed filename must change the fingerprint")
	}
}
