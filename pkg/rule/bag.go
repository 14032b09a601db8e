package rule

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/ovixiao/lre/pkg/rangearg"
	"github.com/ovixiao/lre/pkg/result"
	"github.com/ovixiao/lre/pkg/token"
)

// Bag matches its children in any order, same shape as Ord but without
// the ordering constraint: it enumerates the full Cartesian product and
// keeps only tuples whose spans are pairwise non-overlapping, tracked
// with a bitmap over the document's token offsets rather than the
// reference's copy-on-extend recursion (spec §9's replacement for that).
// Per spec §4.4.5.
type Bag struct {
	Range    rangearg.RuleRange
	Children []Matcher
	Force    bool
}

func (b *Bag) Match(tt *token.TokenizedText) (*result.Set, error) {
	sets, err := matchAll(b.Children, tt)
	if err != nil {
		return nil, err
	}
	if anyEmpty(sets) {
		return result.NewSet(), nil
	}
	out := result.NewSet()
	chosen := make([]result.Result, len(sets))
	var walk func(i int, used *bitset.BitSet)
	walk = func(i int, used *bitset.BitSet) {
		if i == len(sets) {
			beg, end := spanOf(chosen)
			out.Add(result.New(tt.WordList(), beg.Beg, end.End, sumBias(chosen)))
			return
		}
		sets[i].ForEach(func(r result.Result) {
			if spanOverlapsBits(used, r) {
				return
			}
			next := used.Clone()
			markBits(next, r)
			chosen[i] = r
			walk(i+1, next)
		})
	}
	walk(0, bitset.New(uint(tt.Len())))
	return b.Range.Filter(out, b.Force), nil
}

func spanOverlapsBits(used *bitset.BitSet, r result.Result) bool {
	for off := r.Beg.Offset; off <= r.End.Offset; off++ {
		if used.Test(uint(off)) {
			return true
		}
	}
	return false
}

func markBits(used *bitset.BitSet, r result.Result) {
	for off := r.Beg.Offset; off <= r.End.Offset; off++ {
		used.Set(uint(off))
	}
}
