package token

import (
	"testing"

	"github.com/ovixiao/lre/pkg/config"
	"github.com/ovixiao/lre/pkg/result"
	"github.com/ovixiao/lre/pkg/zhseg"
)

func TestBuild_DropsPunctuationAndLowercases(t *testing.T) {
	tz := zhseg.New(config.WordLevelChar, nil)
	tt := Build(tz, "Hello, World!")
	if tt.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (punctuation dropped)", tt.Len())
	}
	w0, _ := tt.TokenAt(0)
	w1, _ := tt.TokenAt(1)
	if w0 != "hello" || w1 != "world" {
		t.Errorf("got tokens %q, %q, want lowercase hello/world", w0, w1)
	}
}

func TestBuild_RepeatedTokenLookup(t *testing.T) {
	tz := zhseg.New(config.WordLevelChar, nil)
	tt := Build(tz, "a b c a")
	set := tt.Lookup("a")
	if set.Len() != 2 {
		t.Fatalf("Lookup(a) Len() = %d, want 2", set.Len())
	}
	offsets := map[int]bool{}
	set.ForEach(func(r result.Result) { offsets[r.Beg.Offset] = true })
	if !offsets[0] || !offsets[3] {
		t.Errorf("expected matches at offsets 0 and 3, got %v", offsets)
	}
}

func TestBuild_AbsentTokenLookupIsEmptyNotNil(t *testing.T) {
	tz := zhseg.New(config.WordLevelChar, nil)
	tt := Build(tz, "a b")
	set := tt.Lookup("zzz")
	if set == nil {
		t.Fatal("Lookup() for an absent token returned nil, want empty non-nil set")
	}
	if set.Len() != 0 {
		t.Errorf("Lookup() Len() = %d, want 0", set.Len())
	}
}

func TestPostings_PromotesAtThreshold(t *testing.T) {
	p := &Postings{}
	for i := 0; i < bitmapThreshold+10; i++ {
		p.Add(uint32(i))
	}
	if p.bm == nil {
		t.Fatal("expected postings to promote to a bitmap past the threshold")
	}
	if p.Len() != bitmapThreshold+10 {
		t.Errorf("Len() = %d, want %d", p.Len(), bitmapThreshold+10)
	}
}
