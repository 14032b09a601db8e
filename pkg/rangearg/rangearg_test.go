package rangearg

import (
	"testing"

	"github.com/ovixiao/lre/pkg/index"
	"github.com/ovixiao/lre/pkg/result"
)

func r(words []string, beg, end index.Index, bias int) result.Result {
	return result.New(words, beg, end, bias)
}

func TestRuleRange_UnitD(t *testing.T) {
	words := []string{"a", "b", "c"}
	rr, err := New(UnitD, 2)
	if err != nil {
		t.Fatal(err)
	}
	within := r(words, index.New(0, 0, 0, 0), index.New(0, 0, 1, 1), 0)
	tooWide := r(words, index.New(0, 0, 0, 0), index.New(0, 0, 2, 2), 0)
	set := result.NewSet(within, tooWide)
	filtered := rr.Filter(set, false)
	if filtered.Len() != 1 {
		t.Fatalf("Filter() Len() = %d, want 1", filtered.Len())
	}
	filtered.ForEach(func(got result.Result) {
		if !got.End.Equal(within.End) {
			t.Errorf("expected the length-2 span to survive, got %v", got)
		}
	})
}

func TestRuleRange_T_PassesEverything(t *testing.T) {
	words := []string{"a", "b"}
	set := result.NewSet(
		r(words, index.New(5, 5, 5, 5), index.New(9, 9, 9, 9), 0),
	)
	if got := RuleT.Filter(set, false).Len(); got != 1 {
		t.Errorf("RuleT.Filter() Len() = %d, want 1", got)
	}
}

func TestRuleRange_BiasSubtractedOnlyWhenForced(t *testing.T) {
	words := []string{"a", "b", "c"}
	rr, err := New(UnitD, 1)
	if err != nil {
		t.Fatal(err)
	}
	spanTwoBiasOne := r(words, index.New(0, 0, 0, 0), index.New(0, 0, 1, 1), 1)
	set := result.NewSet(spanTwoBiasOne)
	if got := rr.Filter(set, false).Len(); got != 0 {
		t.Errorf("without force flag, expected raw span length 2 > 1 to be rejected, got Len()=%d", got)
	}
	if got := rr.Filter(set, true).Len(); got != 1 {
		t.Errorf("with force flag, expected bias-corrected length 1 to pass, got Len()=%d", got)
	}
}

func TestFilterRange_RejectsOnForwardProximity(t *testing.T) {
	words := []string{"not", "on"}
	target := r(words, index.New(0, 0, 1, 1), index.New(0, 0, 1, 1), 0) // "on"
	neighbor := r(words, index.New(0, 0, 0, 0), index.New(0, 0, 0, 0), 0) // "not"
	filterSet := result.NewSet(neighbor)

	fr := FilterRange{FwUnit: UnitD, FwN: 1, BwUnit: UnitD, BwN: 0}
	if !fr.Reject(target, filterSet) {
		t.Error("expected target to be rejected: filter word sits exactly one token before it")
	}
}

func TestFilterRange_NoRejectionWhenFarAway(t *testing.T) {
	words := []string{"not", "x", "x", "on"}
	target := r(words, index.New(0, 0, 3, 3), index.New(0, 0, 3, 3), 0)
	neighbor := r(words, index.New(0, 0, 0, 0), index.New(0, 0, 0, 0), 0)
	filterSet := result.NewSet(neighbor)

	fr := FilterRange{FwUnit: UnitD, FwN: 1, BwUnit: UnitD, BwN: 0}
	if fr.Reject(target, filterSet) {
		t.Error("expected no rejection: filter word is 3 tokens away, outside the window of 1")
	}
}

func TestFilterRange_Overlap(t *testing.T) {
	words := []string{"a", "b", "c"}
	target := r(words, index.New(0, 0, 0, 0), index.New(0, 0, 1, 1), 0)
	overlapping := r(words, index.New(0, 0, 1, 1), index.New(0, 0, 2, 2), 0)
	filterSet := result.NewSet(overlapping)

	fr := FilterRange{Overlap: true}
	if !fr.Reject(target, filterSet) {
		t.Error("expected rejection due to overlap")
	}
}

func TestFilterRange_SkipsSelf(t *testing.T) {
	words := []string{"a"}
	target := r(words, index.New(0, 0, 0, 0), index.New(0, 0, 0, 0), 0)
	filterSet := result.NewSet(target)

	fr := FilterRange{Overlap: true, FwUnit: UnitT, FwN: 1, BwUnit: UnitT, BwN: 1}
	if fr.Reject(target, filterSet) {
		t.Error("target should never be rejected by comparison against itself")
	}
}

func TestParseUnit_Unknown(t *testing.T) {
	if _, err := ParseUnit("z"); err == nil {
		t.Error("expected an error for an unknown unit")
	}
}
