// Package concept implements Concept and ConceptManager, the named
// result producers rules compile into and the late-bound registry
// ConceptArg resolves against at match time, per spec §3.7/§3.8/§4.6.
package concept

import (
	"github.com/ovixiao/lre/pkg/result"
	"github.com/ovixiao/lre/pkg/rule"
	"github.com/ovixiao/lre/pkg/token"
)

// Concept is a named, immutable bundle of compiled matchers. It is built
// once during training and implements rule.Matcher so it can be used
// both as a top-level entry point and, via ConceptArg, as a leaf inside
// another concept's rules.
type Concept struct {
	Name                string
	Producers           []rule.Matcher
	Filters             []*rule.ConceptFilter
	ForceConceptSizeOne bool
}

// Match runs every producer, unions their results, rewrites bias when
// ForceConceptSizeOne is set, then applies the ConceptFilters in
// declared order as post-filters — never as producers, per the explicit
// resolution of spec §4.6's open question.
func (c *Concept) Match(tt *token.TokenizedText) (*result.Set, error) {
	acc := result.NewSet()
	for _, p := range c.Producers {
		s, err := p.Match(tt)
		if err != nil {
			return nil, err
		}
		acc.AddSet(s)
	}
	if c.ForceConceptSizeOne {
		acc = rewriteBias(acc)
	}
	for _, f := range c.Filters {
		var err error
		acc, err = f.Apply(tt, acc)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// rewriteBias applies the force_concept_size_one bias formula of spec
// §3.5 to every member of a set, returning a new set (Results are
// immutable values).
func rewriteBias(set *result.Set) *result.Set {
	out := result.NewSet()
	set.ForEach(func(r result.Result) {
		var bias int
		if r.Beg.IPara == r.End.IPara && r.Beg.ISent == r.End.ISent {
			bias = r.End.IWord - r.Beg.IWord
		} else {
			bias = r.End.Offset - 1
		}
		out.Add(result.New(r.WordList, r.Beg, r.End, bias))
	})
	return out
}
