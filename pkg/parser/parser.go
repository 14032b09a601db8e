// Package parser implements the hand-written recursive-descent scanner
// over `.cpt` source described in spec §4.8. It mirrors the corpus's
// single-pass, trigger-character scanning style (pkg/scanner/syntax):
// skip whitespace byte by byte, then dispatch on the anchor byte found
// there, with no regex or parser-combinator library. Any other byte at
// an anchor position is a syntax error.
//
// The parser only rejects malformed syntax (unterminated keywords,
// unknown anchors, mismatched delimiters). Arity and type validation of
// a Rule's arguments — e.g. a Seq whose first argument is not a
// RuleRange — is a semantic concern the compiler in pkg/rule performs,
// per the Syntax/Semantic error split in spec §7.
package parser

import (
	"fmt"
	"strings"

	"github.com/ovixiao/lre/pkg/ast"
	"github.com/ovixiao/lre/pkg/errs"
)

// Parse scans one `.cpt` file's contents into a ParsedFile. A file with
// no top-level producers is rejected.
func Parse(src string) (*ast.ParsedFile, error) {
	p := &parser{src: src, n: len(src)}
	var producers []ast.Node
	for {
		p.skipSpace()
		if p.pos >= p.n {
			break
		}
		switch p.src[p.pos] {
		case '#':
			p.skipComment()
		case '$':
			rule, err := p.parseRule()
			if err != nil {
				return nil, err
			}
			producers = append(producers, rule)
		case '!':
			node, err := p.parseBang()
			if err != nil {
				return nil, err
			}
			producers = append(producers, node)
		default:
			return nil, p.errorf("unexpected character %q", p.src[p.pos])
		}
	}
	if len(producers) == 0 {
		return nil, fmt.Errorf("%w: file has no top-level rules", errs.Syntax)
	}
	return &ast.ParsedFile{Producers: producers}, nil
}

type parser struct {
	src string
	n   int
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	suffix := p.src[p.pos:]
	if len(suffix) > 32 {
		suffix = suffix[:32]
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s at offset %d, near %q", errs.Syntax, msg, p.pos, suffix)
}

func (p *parser) skipSpace() {
	for p.pos < p.n {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) skipComment() {
	idx := strings.IndexByte(p.src[p.pos:], '\n')
	if idx == -1 {
		p.pos = p.n
		return
	}
	p.pos += idx + 1
}

// parseRule parses `$name(args)`.
func (p *parser) parseRule() (ast.Rule, error) {
	beg := p.pos
	p.pos++ // consume '$'
	name := p.readIdent()
	if name == "" {
		return ast.Rule{}, p.errorf("expected rule name after '$'")
	}
	if p.pos >= p.n || p.src[p.pos] != '(' {
		return ast.Rule{}, p.errorf("expected '(' after rule name %q", name)
	}
	p.pos++ // consume '('
	args, err := p.parseArgList()
	if err != nil {
		return ast.Rule{}, err
	}
	return ast.Rule{Pos: ast.Pos{Beg: beg, End: p.pos}, Name: name, Args: args}, nil
}

// parseBang parses `!filt(...)` or `!cfilt(...)`.
func (p *parser) parseBang() (ast.Node, error) {
	beg := p.pos
	p.pos++ // consume '!'
	switch {
	case strings.HasPrefix(p.src[p.pos:], "cfilt("):
		p.pos += len("cfilt(")
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		return ast.ConceptFilter{Pos: ast.Pos{Beg: beg, End: p.pos}, Args: args}, nil
	case strings.HasPrefix(p.src[p.pos:], "filt("):
		p.pos += len("filt(")
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		return ast.RuleFilter{Pos: ast.Pos{Beg: beg, End: p.pos}, Args: args}, nil
	default:
		return nil, p.errorf("expected 'filt(' or 'cfilt(' after '!'")
	}
}

// parseArgList parses a comma-separated argument list up to and
// including the closing ')'.
func (p *parser) parseArgList() ([]ast.Node, error) {
	var args []ast.Node
	p.skipSpace()
	if p.pos < p.n && p.src[p.pos] == ')' {
		p.pos++
		return args, nil
	}
	for {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		args = append(args, node)
		p.skipSpace()
		if p.pos >= p.n {
			return nil, p.errorf("unterminated argument list")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
			p.skipSpace()
		case ')':
			p.pos++
			return args, nil
		default:
			return nil, p.errorf("expected ',' or ')' in argument list")
		}
	}
}

// parseNode dispatches on the next argument's leading anchor.
func (p *parser) parseNode() (ast.Node, error) {
	if p.pos >= p.n {
		return nil, p.errorf("unexpected end of input")
	}
	switch p.src[p.pos] {
	case '"':
		return p.parseKeyword()
	case '%':
		return p.parseConceptRef()
	case '$':
		return p.parseRule()
	case '!':
		return p.parseBang()
	case '@':
		if strings.HasPrefix(p.src[p.pos:], "@[") {
			return p.parseFilterRange()
		}
		return p.parseRuleRange()
	default:
		return nil, p.errorf("unknown argument")
	}
}

// parseKeyword parses `"..."` with `\"` escapes; unescaped quote, space,
// tab and newline are forbidden inside.
func (p *parser) parseKeyword() (ast.Keyword, error) {
	beg := p.pos
	p.pos++ // consume opening '"'
	var b strings.Builder
	for {
		if p.pos >= p.n {
			return ast.Keyword{}, p.errorf("unterminated keyword")
		}
		c := p.src[p.pos]
		switch c {
		case '"':
			p.pos++
			return ast.Keyword{Pos: ast.Pos{Beg: beg, End: p.pos}, Raw: b.String()}, nil
		case '\\':
			if p.pos+1 < p.n && p.src[p.pos+1] == '"' {
				b.WriteByte('"')
				p.pos += 2
				continue
			}
			return ast.Keyword{}, p.errorf("invalid escape in keyword")
		case ' ', '\t', '\n':
			return ast.Keyword{}, p.errorf("unescaped whitespace in keyword")
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
}

// parseConceptRef parses `%name`, terminated by ',' or ')'.
func (p *parser) parseConceptRef() (ast.ConceptRef, error) {
	beg := p.pos
	p.pos++ // consume '%'
	start := p.pos
	for p.pos < p.n && p.src[p.pos] != ',' && p.src[p.pos] != ')' {
		p.pos++
	}
	name := strings.TrimSpace(p.src[start:p.pos])
	if name == "" {
		return ast.ConceptRef{}, p.errorf("expected concept name after '%%'")
	}
	return ast.ConceptRef{Pos: ast.Pos{Beg: beg, End: p.pos}, Name: name}, nil
}

// parseRuleRange parses `@unit[digits]`; a missing digit suffix defaults
// to 1, per spec §4.8.
func (p *parser) parseRuleRange() (ast.RuleRange, error) {
	beg := p.pos
	p.pos++ // consume '@'
	if p.pos >= p.n {
		return ast.RuleRange{}, p.errorf("expected range unit after '@'")
	}
	unit := string(p.src[p.pos])
	p.pos++
	n, hasN := p.readDigits()
	if !hasN {
		n = 1
	}
	return ast.RuleRange{Pos: ast.Pos{Beg: beg, End: p.pos}, Unit: unit, N: n, HasN: hasN}, nil
}

// parseFilterRange parses `@[ fw_unit fw_n , overlap , bw_unit bw_n ]`.
func (p *parser) parseFilterRange() (ast.FilterRange, error) {
	beg := p.pos
	p.pos += 2 // consume '@['
	fwUnit, fwN, err := p.parseRangeHalf()
	if err != nil {
		return ast.FilterRange{}, err
	}
	if err := p.expectComma(); err != nil {
		return ast.FilterRange{}, err
	}
	p.skipSpace()
	overlapDigit, has := p.readDigits()
	if !has {
		return ast.FilterRange{}, p.errorf("expected overlap flag (0 or 1)")
	}
	if err := p.expectComma(); err != nil {
		return ast.FilterRange{}, err
	}
	bwUnit, bwN, err := p.parseRangeHalf()
	if err != nil {
		return ast.FilterRange{}, err
	}
	p.skipSpace()
	if p.pos >= p.n || p.src[p.pos] != ']' {
		return ast.FilterRange{}, p.errorf("expected ']' to close FilterRange")
	}
	p.pos++
	return ast.FilterRange{
		Pos:     ast.Pos{Beg: beg, End: p.pos},
		FwUnit:  fwUnit,
		FwN:     fwN,
		Overlap: overlapDigit != 0,
		BwUnit:  bwUnit,
		BwN:     bwN,
	}, nil
}

// parseRangeHalf parses a FilterRange half: `({ut}\d*|0)`. A half is
// either a unit letter followed by optional digits, or the bare literal
// "0", which disables that side of the filter (no unit, n=0).
func (p *parser) parseRangeHalf() (string, int, error) {
	p.skipSpace()
	if p.pos >= p.n {
		return "", 0, p.errorf("expected range unit")
	}
	if p.src[p.pos] == '0' {
		p.pos++
		return "", 0, nil
	}
	unit := string(p.src[p.pos])
	p.pos++
	n, has := p.readDigits()
	if !has {
		n = 1
	}
	return unit, n, nil
}

func (p *parser) expectComma() error {
	p.skipSpace()
	if p.pos >= p.n || p.src[p.pos] != ',' {
		return p.errorf("expected ','")
	}
	p.pos++
	return nil
}

func (p *parser) readIdent() string {
	start := p.pos
	for p.pos < p.n {
		c := p.src[p.pos]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *parser) readDigits() (int, bool) {
	start := p.pos
	for p.pos < p.n && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, false
	}
	n := 0
	for _, c := range p.src[start:p.pos] {
		n = n*10 + int(c-'0')
	}
	return n, true
}
