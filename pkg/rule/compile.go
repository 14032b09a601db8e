package rule

import (
	"fmt"

	"github.com/ovixiao/lre/pkg/ast"
	"github.com/ovixiao/lre/pkg/errs"
	"github.com/ovixiao/lre/pkg/rangearg"
	"github.com/ovixiao/lre/pkg/token"
)

// Context carries the state needed to lower an AST subtree into a
// Matcher: the tokenizer keyword literals are re-tokenized through, the
// resolver ConceptArgs defer to, and the config flag range filters need
// to know about when accounting for bias.
type Context struct {
	Tokenizer           token.Tokenizer
	Resolver            ConceptResolver
	ForceConceptSizeOne bool
}

// Compile lowers a single AST node into a Matcher.
func Compile(node ast.Node, ctx *Context) (Matcher, error) {
	switch n := node.(type) {
	case ast.Keyword:
		return compileKeyword(n, ctx)
	case ast.ConceptRef:
		return &ConceptArg{Name: n.Name, Resolver: ctx.Resolver}, nil
	case ast.RuleFilter:
		return CompileRuleFilter(n, ctx)
	case ast.Rule:
		return compileRule(n, ctx)
	default:
		return nil, fmt.Errorf("%w: node of type %T cannot be used as a matcher", errs.Semantic, node)
	}
}

func compileRule(n ast.Rule, ctx *Context) (Matcher, error) {
	switch n.Name {
	case "arg":
		if err := requireArgs("arg", len(n.Args), 1); err != nil {
			return nil, err
		}
		if len(n.Args) != 1 || !isLeafArg(n.Args[0]) {
			return nil, fmt.Errorf("%w: arg takes exactly one Keyword or Concept argument", errs.Semantic)
		}
		child, err := Compile(n.Args[0], ctx)
		if err != nil {
			return nil, err
		}
		return &Arg{Child: child}, nil

	case "kw":
		if len(n.Args) != 1 {
			return nil, fmt.Errorf("%w: kw takes exactly one keyword argument, got %d", errs.Semantic, len(n.Args))
		}
		kw, ok := n.Args[0].(ast.Keyword)
		if !ok {
			return nil, fmt.Errorf("%w: kw's argument must be a keyword literal", errs.Semantic)
		}
		return compileKeyword(kw, ctx)

	case "or":
		if err := requireArgs("or", len(n.Args), 2); err != nil {
			return nil, err
		}
		children, err := compileChildren(n.Args, ctx)
		if err != nil {
			return nil, err
		}
		return &Or{Children: children}, nil

	case "seq", "ord", "bag":
		if err := requireArgs(n.Name, len(n.Args), 2); err != nil {
			return nil, err
		}
		rrNode, ok := n.Args[0].(ast.RuleRange)
		if !ok {
			return nil, fmt.Errorf("%w: %s's first argument must be a RuleRange", errs.Semantic, n.Name)
		}
		rr, err := buildRuleRange(rrNode)
		if err != nil {
			return nil, err
		}
		children, err := compileChildren(n.Args[1:], ctx)
		if err != nil {
			return nil, err
		}
		switch n.Name {
		case "seq":
			return &Seq{Range: rr, Children: children, Force: ctx.ForceConceptSizeOne}, nil
		case "ord":
			return &Ord{Range: rr, Children: children, Force: ctx.ForceConceptSizeOne}, nil
		default:
			return &Bag{Range: rr, Children: children, Force: ctx.ForceConceptSizeOne}, nil
		}

	default:
		return nil, fmt.Errorf("%w: unknown rule %q", errs.Semantic, n.Name)
	}
}

func compileChildren(nodes []ast.Node, ctx *Context) ([]Matcher, error) {
	children := make([]Matcher, len(nodes))
	for i, node := range nodes {
		m, err := Compile(node, ctx)
		if err != nil {
			return nil, err
		}
		children[i] = m
	}
	return children, nil
}

func isLeafArg(n ast.Node) bool {
	switch n.(type) {
	case ast.Keyword, ast.ConceptRef:
		return true
	default:
		return false
	}
}

// compileKeyword re-tokenizes a keyword literal through the document
// tokenizer, per spec §4.3.1: a single resulting token becomes a
// KeywordArg; multiple tokens become an implicit within-sentence Seq.
func compileKeyword(n ast.Keyword, ctx *Context) (Matcher, error) {
	raw := ctx.Tokenizer.Words(n.Raw)
	var tokens []string
	for _, w := range raw {
		if token.IsPunctuation(w) {
			continue
		}
		tokens = append(tokens, token.Normalize(w))
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: keyword %q contains no tokens", errs.Semantic, n.Raw)
	}
	if len(tokens) == 1 {
		return &KeywordArg{Token: tokens[0]}, nil
	}
	children := make([]Matcher, len(tokens))
	for i, t := range tokens {
		children[i] = &KeywordArg{Token: t}
	}
	return &Seq{Range: rangearg.RuleS1, Children: children, Force: ctx.ForceConceptSizeOne}, nil
}

// CompileRuleFilter lowers a `!filt(target, range1, filter1, ...)` node.
func CompileRuleFilter(n ast.RuleFilter, ctx *Context) (*RuleFilter, error) {
	if len(n.Args) < 3 || len(n.Args)%2 == 0 {
		return nil, fmt.Errorf("%w: !filt requires an odd argument count >= 3, got %d", errs.Semantic, len(n.Args))
	}
	target, err := Compile(n.Args[0], ctx)
	if err != nil {
		return nil, err
	}
	pairs := make([]FilterPair, 0, (len(n.Args)-1)/2)
	for i := 1; i < len(n.Args); i += 2 {
		frNode, ok := n.Args[i].(ast.FilterRange)
		if !ok {
			return nil, fmt.Errorf("%w: !filt pair expects a FilterRange", errs.Semantic)
		}
		fr, err := buildFilterRange(frNode)
		if err != nil {
			return nil, err
		}
		m, err := Compile(n.Args[i+1], ctx)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, FilterPair{Range: fr, Matcher: m})
	}
	return &RuleFilter{Target: target, Pairs: pairs}, nil
}

// CompileConceptFilter lowers a `!cfilt(range, filter)` node.
func CompileConceptFilter(n ast.ConceptFilter, ctx *Context) (*ConceptFilter, error) {
	if len(n.Args) != 2 {
		return nil, fmt.Errorf("%w: !cfilt takes exactly 2 arguments, got %d", errs.Semantic, len(n.Args))
	}
	frNode, ok := n.Args[0].(ast.FilterRange)
	if !ok {
		return nil, fmt.Errorf("%w: !cfilt's first argument must be a FilterRange", errs.Semantic)
	}
	fr, err := buildFilterRange(frNode)
	if err != nil {
		return nil, err
	}
	m, err := Compile(n.Args[1], ctx)
	if err != nil {
		return nil, err
	}
	return &ConceptFilter{Range: fr, Matcher: m}, nil
}

func buildRuleRange(n ast.RuleRange) (rangearg.RuleRange, error) {
	unit, err := rangearg.ParseUnit(n.Unit)
	if err != nil {
		return rangearg.RuleRange{}, err
	}
	return rangearg.New(unit, n.N)
}

// buildFilterRange resolves each half's unit, except a half whose n is 0:
// that's the disabled "0" sentinel, which carries no unit to parse and is
// never consulted (FilterRange.Reject short-circuits on FwN/BwN == 0).
func buildFilterRange(n ast.FilterRange) (rangearg.FilterRange, error) {
	var fwUnit, bwUnit rangearg.Unit
	var err error
	if n.FwN != 0 {
		if fwUnit, err = rangearg.ParseUnit(n.FwUnit); err != nil {
			return rangearg.FilterRange{}, err
		}
	}
	if n.BwN != 0 {
		if bwUnit, err = rangearg.ParseUnit(n.BwUnit); err != nil {
			return rangearg.FilterRange{}, err
		}
	}
	return rangearg.FilterRange{
		FwUnit: fwUnit, FwN: n.FwN, Overlap: n.Overlap, BwUnit: bwUnit, BwN: n.BwN,
	}, nil
}
