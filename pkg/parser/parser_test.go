package parser

import (
	"testing"

	"github.com/ovixiao/lre/pkg/ast"
)

func TestParse_SimpleKeywordRule(t *testing.T) {
	pf, err := Parse(`$kw("phone")`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(pf.Producers) != 1 {
		t.Fatalf("len(Producers) = %d, want 1", len(pf.Producers))
	}
}

func TestParse_CommentsAndWhitespaceSkipped(t *testing.T) {
	src := "# a comment\n  $kw(\"a\")  \n# trailing\n"
	pf, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(pf.Producers) != 1 {
		t.Fatalf("len(Producers) = %d, want 1", len(pf.Producers))
	}
}

func TestParse_SeqWithRuleRange(t *testing.T) {
	pf, err := Parse(`$seq(@s1,"a","b")`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(pf.Producers) != 1 {
		t.Fatalf("len(Producers) = %d, want 1", len(pf.Producers))
	}
}

func TestParse_FilterRange(t *testing.T) {
	pf, err := Parse(`!filt($kw("on"), @[d1,0,0], $kw("not"))`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(pf.Producers) != 1 {
		t.Fatalf("len(Producers) = %d, want 1", len(pf.Producers))
	}
}

func TestParse_FilterRange_BareZeroDisablesBackwardHalf(t *testing.T) {
	pf, err := Parse(`!filt($kw("on"), @[d1,0,0], $kw("not"))`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	rf, ok := pf.Producers[0].(ast.RuleFilter)
	if !ok {
		t.Fatalf("producer type = %T, want ast.RuleFilter", pf.Producers[0])
	}
	fr, ok := rf.Args[1].(ast.FilterRange)
	if !ok {
		t.Fatalf("arg type = %T, want ast.FilterRange", rf.Args[1])
	}
	if fr.BwUnit != "" || fr.BwN != 0 {
		t.Errorf("BwUnit/BwN = %q/%d, want disabled (\"\"/0)", fr.BwUnit, fr.BwN)
	}
	if fr.FwUnit != "d" || fr.FwN != 1 {
		t.Errorf("FwUnit/FwN = %q/%d, want \"d\"/1", fr.FwUnit, fr.FwN)
	}
}

func TestParse_ConceptReference(t *testing.T) {
	pf, err := Parse(`$or(%A,"mobile")`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(pf.Producers) != 1 {
		t.Fatalf("len(Producers) = %d, want 1", len(pf.Producers))
	}
}

func TestParse_EscapedQuoteInKeyword(t *testing.T) {
	pf, err := Parse(`$kw("say\"hi\"")`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(pf.Producers) != 1 {
		t.Fatalf("len(Producers) = %d, want 1", len(pf.Producers))
	}
}

func TestParse_RejectsEmptyFile(t *testing.T) {
	if _, err := Parse("# just a comment\n"); err == nil {
		t.Error("expected an error for a file with no producers")
	}
}

func TestParse_RejectsUnterminatedKeyword(t *testing.T) {
	if _, err := Parse(`$kw("unterminated)`); err == nil {
		t.Error("expected an error for an unterminated keyword literal")
	}
}

func TestParse_RejectsUnknownTopLevelCharacter(t *testing.T) {
	if _, err := Parse(`%foo`); err == nil {
		t.Error("expected an error: a bare concept reference is not a valid top-level producer")
	}
}
