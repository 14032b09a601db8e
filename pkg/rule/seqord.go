package rule

import (
	"github.com/ovixiao/lre/pkg/rangearg"
	"github.com/ovixiao/lre/pkg/result"
	"github.com/ovixiao/lre/pkg/token"
)

// Seq matches its children in strict offset-contiguous order: each
// child's match must end on the offset immediately before the next one
// begins. Per spec §4.4.3.
type Seq struct {
	Range    rangearg.RuleRange
	Children []Matcher
	Force    bool
}

func (s *Seq) Match(tt *token.TokenizedText) (*result.Set, error) {
	sets, err := matchAll(s.Children, tt)
	if err != nil {
		return nil, err
	}
	if anyEmpty(sets) {
		return result.NewSet(), nil
	}
	out := result.NewSet()
	chosen := make([]result.Result, 0, len(sets))
	var walk func(i int)
	walk = func(i int) {
		if i == len(sets) {
			beg, end := chosen[0], chosen[len(chosen)-1]
			out.Add(result.New(tt.WordList(), beg.Beg, end.End, sumBias(chosen)))
			return
		}
		sets[i].ForEach(func(r result.Result) {
			if i > 0 && chosen[i-1].End.Offset+1 != r.Beg.Offset {
				return
			}
			chosen = append(chosen, r)
			walk(i + 1)
			chosen = chosen[:len(chosen)-1]
		})
	}
	walk(0)
	return s.Range.Filter(out, s.Force), nil
}

// Ord matches its children in order but allows any gap between them:
// child i's match must end strictly before child i+1's begins. Per spec
// §4.4.4.
type Ord struct {
	Range    rangearg.RuleRange
	Children []Matcher
	Force    bool
}

func (o *Ord) Match(tt *token.TokenizedText) (*result.Set, error) {
	sets, err := matchAll(o.Children, tt)
	if err != nil {
		return nil, err
	}
	if anyEmpty(sets) {
		return result.NewSet(), nil
	}
	out := result.NewSet()
	chosen := make([]result.Result, 0, len(sets))
	var walk func(i int)
	walk = func(i int) {
		if i == len(sets) {
			beg, end := chosen[0], chosen[len(chosen)-1]
			out.Add(result.New(tt.WordList(), beg.Beg, end.End, sumBias(chosen)))
			return
		}
		sets[i].ForEach(func(r result.Result) {
			if i > 0 && !(chosen[i-1].End.Offset < r.Beg.Offset) {
				return
			}
			chosen = append(chosen, r)
			walk(i + 1)
			chosen = chosen[:len(chosen)-1]
		})
	}
	walk(0)
	return o.Range.Filter(out, o.Force), nil
}
