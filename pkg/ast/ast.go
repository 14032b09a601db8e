// Package ast defines the syntax tree a `.cpt` source file is parsed
// into. Per spec §3.6/§9, this replaces the reference's dynamic
// attribute-dict nodes with an explicit sum type: one Go type per
// variant, dispatched on by a type switch in the compiler rather than by
// reflecting over a class name.
package ast

// Pos is a byte-offset span into the source file a node was parsed from.
type Pos struct {
	Beg int
	End int
}

// Node is any syntax tree element. Each concrete type below is one
// SyntaxNode variant from spec §3.6.
type Node interface {
	Position() Pos
	node()
}

// Comment is a `# ...` line; carried in the tree for completeness but
// never reaches the compiler.
type Comment struct {
	Pos  Pos
	Text string
}

// Rule is a `$name(args)` invocation. name selects the combinator the
// compiler builds: arg, kw, or, seq, ord or bag.
type Rule struct {
	Pos  Pos
	Name string
	Args []Node
}

// ConceptRef is a `%name` reference, resolved to a Concept at match time
// by the compiled ConceptArg.
type ConceptRef struct {
	Pos  Pos
	Name string
}

// Keyword is a `"..."` literal. Raw holds the unescaped string contents;
// the compiler re-tokenizes it through the document tokenizer to build
// the KeywordArg's sub-token list, per spec §4.3.1.
type Keyword struct {
	Pos Pos
	Raw string
}

// RuleRange is an `@unit[n]` node. HasN distinguishes an explicit digit
// suffix from the implicit default of 1 (spec §4.8's "absent ⇒ 1").
type RuleRange struct {
	Pos  Pos
	Unit string
	N    int
	HasN bool
}

// FilterRange is an `@[fw_unit fw_n, overlap, bw_unit bw_n]` node.
type FilterRange struct {
	Pos     Pos
	FwUnit  string
	FwN     int
	Overlap bool
	BwUnit  string
	BwN     int
}

// RuleFilter is a `!filt(target, range1, filter1, ...)` node.
type RuleFilter struct {
	Pos  Pos
	Args []Node
}

// ConceptFilter is a `!cfilt(range, filter)` node.
type ConceptFilter struct {
	Pos  Pos
	Args []Node
}

func (n Comment) Position() Pos       { return n.Pos }
func (n Rule) Position() Pos          { return n.Pos }
func (n ConceptRef) Position() Pos    { return n.Pos }
func (n Keyword) Position() Pos       { return n.Pos }
func (n RuleRange) Position() Pos     { return n.Pos }
func (n FilterRange) Position() Pos   { return n.Pos }
func (n RuleFilter) Position() Pos    { return n.Pos }
func (n ConceptFilter) Position() Pos { return n.Pos }

func (Comment) node()       {}
func (Rule) node()          {}
func (ConceptRef) node()    {}
func (Keyword) node()       {}
func (RuleRange) node()     {}
func (FilterRange) node()   {}
func (RuleFilter) node()    {}
func (ConceptFilter) node() {}

// ParsedFile is one `.cpt` file's top-level producers: Rule, RuleFilter
// and ConceptFilter nodes, in source order. A file with zero producers is
// rejected by the parser (spec §4.8).
type ParsedFile struct {
	Producers []Node
}
