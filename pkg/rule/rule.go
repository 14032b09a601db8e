// Package rule implements the leaf matchers and composite rule
// combinators the compiler lowers a parsed `.cpt` AST into, per spec
// §4.3–§4.5. Every matcher shares a single `Match(text) → ResultSet`
// contract; composition is Cartesian-product-based tuple enumeration,
// range-filtered at the end, matching the reference's rule classes.
package rule

import (
	"fmt"

	"github.com/ovixiao/lre/pkg/errs"
	"github.com/ovixiao/lre/pkg/result"
	"github.com/ovixiao/lre/pkg/token"
)

// Matcher is anything that can be run against a tokenized document and
// produce a deduplicated set of matched spans: leaf keyword/concept
// lookups, composite rules, and RuleFilter (which is itself a rule).
type Matcher interface {
	Match(tt *token.TokenizedText) (*result.Set, error)
}

// ConceptResolver resolves a concept name to its compiled Matcher at
// match time. Defined here rather than depending on pkg/concept directly
// so ConceptArg never has to import the package that, in turn, must
// import this one to store compiled rule trees — the dependency only
// runs one way, concept → rule.
type ConceptResolver interface {
	Resolve(name string) (Matcher, error)
}

// KeywordArg looks a single token up in the document's inverted index.
// A multi-token keyword phrase compiles to a Seq of these (spec §4.3.1).
type KeywordArg struct {
	Token string
}

func (k *KeywordArg) Match(tt *token.TokenizedText) (*result.Set, error) {
	return tt.Lookup(k.Token), nil
}

// ConceptArg delegates to a named Concept, resolved lazily at match
// time so forward references and mutual recursion across files work.
// A missing name is a fatal error, never a silent empty match.
type ConceptArg struct {
	Name     string
	Resolver ConceptResolver
}

func (c *ConceptArg) Match(tt *token.TokenizedText) (*result.Set, error) {
	m, err := c.Resolver.Resolve(c.Name)
	if err != nil {
		return nil, err
	}
	return m.Match(tt)
}

// Arg passes a single Keyword or Concept leaf through unchanged.
type Arg struct {
	Child Matcher
}

func (a *Arg) Match(tt *token.TokenizedText) (*result.Set, error) {
	return a.Child.Match(tt)
}

// Or is the union of its children's result sets.
type Or struct {
	Children []Matcher
}

func (o *Or) Match(tt *token.TokenizedText) (*result.Set, error) {
	out := result.NewSet()
	for _, c := range o.Children {
		s, err := c.Match(tt)
		if err != nil {
			return nil, err
		}
		out.AddSet(s)
	}
	return out, nil
}

// matchAll runs every child against tt, stopping at the first error.
func matchAll(children []Matcher, tt *token.TokenizedText) ([]*result.Set, error) {
	sets := make([]*result.Set, len(children))
	for i, c := range children {
		s, err := c.Match(tt)
		if err != nil {
			return nil, err
		}
		sets[i] = s
	}
	return sets, nil
}

func anyEmpty(sets []*result.Set) bool {
	for _, s := range sets {
		if s.Len() == 0 {
			return true
		}
	}
	return false
}

func sumBias(chosen []result.Result) int {
	sum := 0
	for _, r := range chosen {
		sum += r.Bias
	}
	return sum
}

func spanOf(chosen []result.Result) (beg, end result.Result) {
	beg, end = chosen[0], chosen[0]
	for _, r := range chosen[1:] {
		if r.Beg.Offset < beg.Beg.Offset {
			beg = r
		}
		if r.End.Offset > end.End.Offset {
			end = r
		}
	}
	return beg, end
}

func requireArgs(name string, n, min int) error {
	if n < min {
		return fmt.Errorf("%w: %s requires at least %d argument(s), got %d", errs.Semantic, name, min, n)
	}
	return nil
}
