// Package lre is the top-level facade: it trains a Model from a
// directory of `.cpt` rule files and runs it against text, per spec
// §4.7. Its API exposes types from the lower packages (config.Config,
// token.TokenizedText, result.Set), which callers import directly.
package lre

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ovixiao/lre/pkg/ast"
	"github.com/ovixiao/lre/pkg/concept"
	"github.com/ovixiao/lre/pkg/config"
	"github.com/ovixiao/lre/pkg/errs"
	"github.com/ovixiao/lre/pkg/parser"
	"github.com/ovixiao/lre/pkg/result"
	"github.com/ovixiao/lre/pkg/rule"
	"github.com/ovixiao/lre/pkg/token"
	"github.com/ovixiao/lre/pkg/zhseg"
)

// Model is an immutable, trained set of concepts ready to match text.
type Model struct {
	cfg config.Config
	mgr *concept.Manager
	tz  token.Tokenizer
}

// Train walks root within fsys, compiling every `.cpt` file it finds
// into a registered Concept. A per-file parse or compile error is logged
// and then propagated, aborting training, per spec §4.7.
func Train(cfg config.Config, fsys fs.FS, root string) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tz := zhseg.New(cfg.WordLevel, nil)
	mgr := concept.NewManager()

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: walking %s: %v", errs.IO, path, err)
		}
		if d.IsDir() || filepath.Ext(path) != ".cpt" {
			return nil
		}
		c, buildErr := loadConceptFile(fsys, path, tz, mgr, cfg)
		if buildErr != nil {
			log.Printf("lre: loading %s: %v", path, buildErr)
			return buildErr
		}
		return mgr.Add(c)
	})
	if err != nil {
		return nil, err
	}
	return &Model{cfg: cfg, mgr: mgr, tz: tz}, nil
}

// TrainDir is a convenience wrapper over Train for a real OS directory.
func TrainDir(cfg config.Config, dir string) (*Model, error) {
	return Train(cfg, os.DirFS(dir), ".")
}

func loadConceptFile(fsys fs.FS, path string, tz token.Tokenizer, mgr *concept.Manager, cfg config.Config) (*concept.Concept, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", errs.IO, path, err)
	}
	pf, err := parser.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), ".cpt")
	return buildConcept(name, pf, tz, mgr, cfg)
}

func buildConcept(name string, pf *ast.ParsedFile, tz token.Tokenizer, mgr *concept.Manager, cfg config.Config) (*concept.Concept, error) {
	ctx := &rule.Context{Tokenizer: tz, Resolver: mgr, ForceConceptSizeOne: cfg.ForceConceptSizeOne}
	var producers []rule.Matcher
	var filters []*rule.ConceptFilter
	for _, node := range pf.Producers {
		if cf, ok := node.(ast.ConceptFilter); ok {
			compiled, err := rule.CompileConceptFilter(cf, ctx)
			if err != nil {
				return nil, fmt.Errorf("concept %q: %w", name, err)
			}
			filters = append(filters, compiled)
			continue
		}
		m, err := rule.Compile(node, ctx)
		if err != nil {
			return nil, fmt.Errorf("concept %q: %w", name, err)
		}
		producers = append(producers, m)
	}
	if len(producers) == 0 {
		return nil, fmt.Errorf("%w: concept %q has no producer rules", errs.Semantic, name)
	}
	return &concept.Concept{
		Name:                name,
		Producers:           producers,
		Filters:             filters,
		ForceConceptSizeOne: cfg.ForceConceptSizeOne,
	}, nil
}

// Match runs every registered concept whose name is accepted by filter
// (nil accepts every concept) against input, returning non-empty result
// sets keyed by concept name. input is either raw text (tokenized with
// the Model's configured tokenizer) or an already-tokenized document.
func (m *Model) Match(input any, filter func(name string) bool) (map[string]*result.Set, error) {
	tt, err := m.resolveInput(input)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*result.Set)
	var matchErr error
	m.mgr.Iter(func(c *concept.Concept) {
		if matchErr != nil || (filter != nil && !filter(c.Name)) {
			return
		}
		s, err := c.Match(tt)
		if err != nil {
			matchErr = fmt.Errorf("concept %q: %w", c.Name, err)
			return
		}
		if s.Len() > 0 {
			out[c.Name] = s
		}
	})
	if matchErr != nil {
		return nil, matchErr
	}
	return out, nil
}

func (m *Model) resolveInput(input any) (*token.TokenizedText, error) {
	switch v := input.(type) {
	case *token.TokenizedText:
		return v, nil
	case string:
		return token.Build(m.tz, truncateRunes(v, m.cfg.MaxTextLength)), nil
	default:
		return nil, fmt.Errorf("%w: match input must be a string or *token.TokenizedText, got %T", errs.Semantic, input)
	}
}

// Tokenize exposes the Model's configured tokenizer so callers can build
// a TokenizedText once and reuse it across multiple Match calls.
func (m *Model) Tokenize(text string) *token.TokenizedText {
	return token.Build(m.tz, truncateRunes(text, m.cfg.MaxTextLength))
}

// truncateRunes cuts s down to at most max runes, per spec §5/§6.1: input
// is truncated before tokenization rather than rejected.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
