package token

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// bitmapThreshold is the per-token occurrence count at which a
// postings list is promoted from a sorted slice to a roaring bitmap.
// Adapted from the reference corpus's pkg/qgram/posting_list.go, whose
// DefaultBitmapThreshold balances cache-friendly scanning for rare
// tokens against SIMD-friendly set operations for frequent ones; here
// the "documents" are token offsets within one TokenizedText rather than
// doc IDs across a corpus; 2000 stays consistent with high-frequency
// particles showing up thousands of times in a single long document.
const bitmapThreshold = 2000

// Postings is the offset list for a single token. Below the threshold it
// is a []uint32 in insertion order, which does not deduplicate repeated
// offsets; at or above it, a roaring bitmap. Offsets returns ascending
// order in both forms.
// The dual representation mirrors the reference's SlicePostings /
// BitmapPostings split.
type Postings struct {
	slice []uint32
	bm    *roaring.Bitmap
}

// Add records one more occurrence of this token at offset.
func (p *Postings) Add(offset uint32) {
	if p.bm != nil {
		p.bm.Add(offset)
		return
	}
	p.slice = append(p.slice, offset)
	if len(p.slice) >= bitmapThreshold {
		p.promote()
	}
}

func (p *Postings) promote() {
	bm := roaring.New()
	bm.AddMany(p.slice)
	p.bm = bm
	p.slice = nil
}

// Len returns the number of occurrences recorded.
func (p *Postings) Len() int {
	if p == nil {
		return 0
	}
	if p.bm != nil {
		return int(p.bm.GetCardinality())
	}
	return len(p.slice)
}

// Offsets returns the occurrences in ascending order.
func (p *Postings) Offsets() []uint32 {
	if p == nil {
		return nil
	}
	if p.bm != nil {
		return p.bm.ToArray()
	}
	out := make([]uint32, len(p.slice))
	copy(out, p.slice)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
