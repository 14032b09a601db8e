package concept

import (
	"strings"
	"testing"

	"github.com/ovixiao/lre/pkg/config"
	"github.com/ovixiao/lre/pkg/rangearg"
	"github.com/ovixiao/lre/pkg/result"
	"github.com/ovixiao/lre/pkg/rule"
	"github.com/ovixiao/lre/pkg/token"
	"github.com/ovixiao/lre/pkg/zhseg"
)

func TestManager_ResolveMissingConceptErrors(t *testing.T) {
	mgr := NewManager()
	if _, err := mgr.Resolve("missing"); err == nil {
		t.Error("expected an error resolving an unregistered concept")
	}
}

func TestManager_ResolveMissingConceptSuggestsPrefixMatch(t *testing.T) {
	mgr := NewManager()
	c := &Concept{Name: "phone_number", Producers: []rule.Matcher{&rule.KeywordArg{Token: "a"}}}
	if err := mgr.Add(c); err != nil {
		t.Fatal(err)
	}
	_, err := mgr.Resolve("phone")
	if err == nil {
		t.Fatal("expected an error resolving an unregistered concept")
	}
	if !strings.Contains(err.Error(), "phone_number") {
		t.Errorf("error %q should suggest the registered prefix match phone_number", err.Error())
	}
}

func TestManager_AddDuplicateRejected(t *testing.T) {
	mgr := NewManager()
	c := &Concept{Name: "dup", Producers: []rule.Matcher{&rule.KeywordArg{Token: "a"}}}
	if err := mgr.Add(c); err != nil {
		t.Fatal(err)
	}
	if err := mgr.Add(c); err == nil {
		t.Error("expected re-registering the same concept name to error")
	}
}

func TestConcept_ForceConceptSizeOne(t *testing.T) {
	// word_level=word so "安装" segments as one dictionary word, matching
	// the text's own whitespace-delimited token boundary.
	tz := zhseg.New(config.WordLevelWord, nil)
	tt := token.Build(tz, "安装 好")

	rr, err := rangearg.New(rangearg.UnitS, 1)
	if err != nil {
		t.Fatal(err)
	}
	seq := &rule.Seq{
		Range: rr,
		Children: []rule.Matcher{
			&rule.KeywordArg{Token: "安装"},
			&rule.KeywordArg{Token: "好"},
		},
	}

	unforced := &Concept{Name: "安装好", Producers: []rule.Matcher{seq}}
	set, err := unforced.Match(tt)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", set.Len())
	}
	set.ForEach(func(r result.Result) {
		if r.Len() != 2 {
			t.Errorf("unforced Len() = %d, want 2", r.Len())
		}
	})

	seq.Force = true
	forced := &Concept{Name: "安装好", Producers: []rule.Matcher{seq}, ForceConceptSizeOne: true}
	set2, err := forced.Match(tt)
	if err != nil {
		t.Fatal(err)
	}
	set2.ForEach(func(r result.Result) {
		if r.Len() != 1 {
			t.Errorf("forced Len() = %d, want 1", r.Len())
		}
		if r.Bias != 1 {
			t.Errorf("forced Bias = %d, want 1", r.Bias)
		}
	})
}

func TestConcept_CrossReferenceViaConceptArg(t *testing.T) {
	tz := zhseg.New(config.WordLevelChar, nil)
	tt := token.Build(tz, "phone mobile")

	mgr := NewManager()
	conceptA := &Concept{Name: "A", Producers: []rule.Matcher{&rule.KeywordArg{Token: "phone"}}}
	if err := mgr.Add(conceptA); err != nil {
		t.Fatal(err)
	}
	conceptB := &Concept{Name: "B", Producers: []rule.Matcher{
		&rule.Or{Children: []rule.Matcher{
			&rule.ConceptArg{Name: "A", Resolver: mgr},
			&rule.KeywordArg{Token: "mobile"},
		}},
	}}
	if err := mgr.Add(conceptB); err != nil {
		t.Fatal(err)
	}

	setA, err := conceptA.Match(tt)
	if err != nil {
		t.Fatal(err)
	}
	if setA.Len() != 1 {
		t.Errorf("concept A Len() = %d, want 1", setA.Len())
	}

	setB, err := conceptB.Match(tt)
	if err != nil {
		t.Fatal(err)
	}
	if setB.Len() != 2 {
		t.Errorf("concept B Len() = %d, want 2", setB.Len())
	}
}

func TestConceptArg_MissingConceptIsFatal(t *testing.T) {
	tz := zhseg.New(config.WordLevelChar, nil)
	tt := token.Build(tz, "anything")
	mgr := NewManager()
	arg := &rule.ConceptArg{Name: "nonexistent", Resolver: mgr}
	if _, err := arg.Match(tt); err == nil {
		t.Error("expected a fatal error resolving a nonexistent concept, got nil")
	}
}
