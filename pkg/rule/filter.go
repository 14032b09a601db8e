package rule

import (
	"github.com/ovixiao/lre/pkg/rangearg"
	"github.com/ovixiao/lre/pkg/result"
	"github.com/ovixiao/lre/pkg/token"
)

// FilterPair is one (FilterRange, matcher) pair inside a RuleFilter.
type FilterPair struct {
	Range   rangearg.FilterRange
	Matcher Matcher
}

// RuleFilter matches its target, then drops any target match rejected by
// any of its filter pairs. It is itself a Matcher, usable anywhere a
// rule is (spec §4.5.1).
type RuleFilter struct {
	Target Matcher
	Pairs  []FilterPair
}

func (f *RuleFilter) Match(tt *token.TokenizedText) (*result.Set, error) {
	targets, err := f.Target.Match(tt)
	if err != nil {
		return nil, err
	}
	filterSets := make([]*result.Set, len(f.Pairs))
	for i, pair := range f.Pairs {
		fs, err := pair.Matcher.Match(tt)
		if err != nil {
			return nil, err
		}
		filterSets[i] = fs
	}
	return targets.Filter(func(t result.Result) bool {
		for i, pair := range f.Pairs {
			if pair.Range.Reject(t, filterSets[i]) {
				return false
			}
		}
		return true
	}), nil
}

// ConceptFilter is not a rule: it is a post-filter applied to a
// Concept's already-assembled aggregate result set, per spec §4.5.2 and
// the explicit producer/post-filter resolution in §4.6.
type ConceptFilter struct {
	Range   rangearg.FilterRange
	Matcher Matcher
}

// Apply filters target against the ConceptFilter's own matcher results.
func (c *ConceptFilter) Apply(tt *token.TokenizedText, target *result.Set) (*result.Set, error) {
	filterSet, err := c.Matcher.Match(tt)
	if err != nil {
		return nil, err
	}
	return target.Filter(func(r result.Result) bool {
		return !c.Range.Reject(r, filterSet)
	}), nil
}
