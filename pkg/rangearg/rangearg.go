// Package rangearg implements the two span-constraint types every rule
// and filter is parameterized by: RuleRange, a post-filter on a single
// ResultSet by span length, and FilterRange, a reject predicate comparing
// a target Result's positional neighborhood against another ResultSet.
// Grounded on the reference's lre/arg/rule_range_arg.py and
// lre/arg/filter_range_arg.py.
package rangearg

import (
	"fmt"

	"github.com/ovixiao/lre/pkg/errs"
	"github.com/ovixiao/lre/pkg/result"
)

// Unit is the span-length unit a RuleRange or FilterRange half is
// measured in.
type Unit int

const (
	UnitD Unit = iota
	UnitW
	UnitS
	UnitP
	UnitT
)

// ParseUnit maps a single-letter unit code from `.cpt` source to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "d":
		return UnitD, nil
	case "w":
		return UnitW, nil
	case "s":
		return UnitS, nil
	case "p":
		return UnitP, nil
	case "t":
		return UnitT, nil
	default:
		return 0, fmt.Errorf("%w: unknown range unit %q", errs.Config, s)
	}
}

func (u Unit) String() string {
	switch u {
	case UnitD:
		return "d"
	case UnitW:
		return "w"
	case UnitS:
		return "s"
	case UnitP:
		return "p"
	case UnitT:
		return "t"
	default:
		return "?"
	}
}

// RuleRange is a post-filter on a ResultSet by span length, per spec
// §4.2.1. The zero value is not meaningful; use New, RuleT or RuleS1.
type RuleRange struct {
	Unit Unit
	N    int
}

// New builds a RuleRange, rejecting n < 1 for every unit but t.
func New(unit Unit, n int) (RuleRange, error) {
	if unit != UnitT && n < 1 {
		return RuleRange{}, fmt.Errorf("%w: range n must be >= 1, got %d", errs.Semantic, n)
	}
	return RuleRange{Unit: unit, N: n}, nil
}

// RuleT is the module-level `@t` constant: passes every Result through.
var RuleT = RuleRange{Unit: UnitT}

// RuleS1 is the module-level `@s1` constant KeywordArg compiles its
// implicit Seq with.
var RuleS1 = RuleRange{Unit: UnitS, N: 1}

// Filter returns the subset of set that satisfies the range, per the
// eff_len table in spec §4.2.1. forceConceptSizeOne gates whether a
// Result's Bias is subtracted for the d and w units.
func (rr RuleRange) Filter(set *result.Set, forceConceptSizeOne bool) *result.Set {
	return set.Filter(func(r result.Result) bool { return rr.keep(r, forceConceptSizeOne) })
}

func (rr RuleRange) keep(r result.Result, forceConceptSizeOne bool) bool {
	bias := 0
	if forceConceptSizeOne {
		bias = r.Bias
	}
	switch rr.Unit {
	case UnitD:
		return r.Beg.IPara == r.End.IPara && r.Beg.ISent == r.End.ISent &&
			r.End.IWord-r.Beg.IWord+1-bias <= rr.N
	case UnitW:
		return r.Beg.IPara == r.End.IPara &&
			r.End.Offset-r.Beg.Offset+1-bias <= rr.N
	case UnitS:
		return r.Beg.IPara == r.End.IPara && r.End.ISent-r.Beg.ISent+1 <= rr.N
	case UnitP:
		return r.End.IPara-r.Beg.IPara+1 <= rr.N
	case UnitT:
		return true
	default:
		return false
	}
}

// FilterRange is the reject predicate built from `@[fw,overlap,bw]`
// syntax, per spec §4.2.2.
type FilterRange struct {
	FwUnit  Unit
	FwN     int
	Overlap bool
	BwUnit  Unit
	BwN     int
}

// Reject reports whether target must be discarded because of its
// positional relationship to the members of filterSet (excluding target
// itself, compared by span identity).
func (fr FilterRange) Reject(target result.Result, filterSet *result.Set) bool {
	reject := false
	filterSet.ForEach(func(f result.Result) {
		if reject || sameSpan(target, f) {
			return
		}
		if fr.FwN > 0 && forwardHit(fr.FwUnit, fr.FwN, target, f) {
			reject = true
			return
		}
		if fr.BwN > 0 && backwardHit(fr.BwUnit, fr.BwN, target, f) {
			reject = true
			return
		}
		if fr.Overlap && target.Overlap(f) {
			reject = true
		}
	})
	return reject
}

func sameSpan(a, b result.Result) bool {
	return a.Beg.Equal(b.Beg) && a.End.Equal(b.End) && a.Bias == b.Bias
}

// forwardHit tests whether fr sits close enough before target to count as
// a forward neighbor under unit, per spec §4.2.2.
func forwardHit(unit Unit, n int, target, fr result.Result) bool {
	switch unit {
	case UnitD:
		return target.Beg.IPara == fr.End.IPara && target.Beg.ISent == fr.End.ISent &&
			target.Beg.IWord > fr.End.IWord && fr.End.IWord >= target.Beg.IWord-n
	case UnitW:
		return target.Beg.IPara == fr.End.IPara &&
			target.Beg.Offset > fr.End.Offset && fr.End.Offset >= target.Beg.Offset-n
	case UnitS:
		return target.Beg.IPara == fr.End.IPara &&
			target.Beg.ISent > fr.End.ISent && fr.End.ISent >= target.Beg.ISent-n
	case UnitP:
		return target.Beg.IPara > fr.End.IPara && fr.End.IPara >= target.Beg.IPara-n
	case UnitT:
		return fr.End.Offset < target.Beg.Offset
	default:
		return false
	}
}

// backwardHit is the symmetric test using fr.Beg against target.End.
func backwardHit(unit Unit, n int, target, fr result.Result) bool {
	switch unit {
	case UnitD:
		return fr.Beg.IPara == target.End.IPara && fr.Beg.ISent == target.End.ISent &&
			fr.Beg.IWord > target.End.IWord && target.End.IWord >= fr.Beg.IWord-n
	case UnitW:
		return fr.Beg.IPara == target.End.IPara &&
			fr.Beg.Offset > target.End.Offset && target.End.Offset >= fr.Beg.Offset-n
	case UnitS:
		return fr.Beg.IPara == target.End.IPara &&
			fr.Beg.ISent > target.End.ISent && target.End.ISent >= fr.Beg.ISent-n
	case UnitP:
		return fr.Beg.IPara > target.End.IPara && target.End.IPara >= fr.Beg.IPara-n
	case UnitT:
		return fr.Beg.Offset > target.End.Offset
	default:
		return false
	}
}
