// Package zhseg implements the language-specific word segmentation the
// top-level spec calls out of scope for the core engine (only a Chinese
// tokenizer exists in the reference). It satisfies token.Tokenizer.
//
// Sentence splitting and char-mode word splitting are a direct port of
// the reference's NlpZh (regex sentence split on a fixed punctuation set,
// per-rune splitting for non-Latin runs). Word-mode segmentation is
// adapted from the corpus's pkg/dafsa package: "a runtime dictionary
// using Aho-Corasick — single AC automaton serves as both dictionary
// lookup AND text scanner", here driving longest-match word boundaries
// over a small built-in dictionary instead of entity aliases.
package zhseg

import (
	"strings"
	"unicode"
	"unicode/utf8"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/ovixiao/lre/pkg/config"
)

// defaultSentenceBoundaries matches the reference's literal rune set:
// re.compile('[!。！…?？]').
var defaultSentenceBoundaries = map[rune]bool{
	'!': true, '。': true, '！': true, '…': true, '?': true, '？': true,
}

// defaultDictionary seeds word-mode segmentation. It is intentionally
// small: the engine's correctness never depends on dictionary coverage,
// only on "word" mode preferring a dictionary hit over a lone character
// when one exists, matching the contrast the distilled spec leaves
// implicit between char and word modes.
var defaultDictionary = []string{
	"手机", "电话", "安装", "好了", "北京", "上海", "中国", "公司",
	"客户", "服务", "软件", "系统", "电脑", "网络", "数据", "工程师",
}

// Tokenizer implements token.Tokenizer for Chinese text.
type Tokenizer struct {
	wordLevel   config.WordLevel
	boundaries  map[rune]bool
	ac          ahocorasick.AhoCorasick
	hasAC       bool
}

// New builds a Tokenizer for the given word level using dict as the
// word-mode segmentation dictionary. A nil/empty dict falls back to a
// small built-in default.
func New(wordLevel config.WordLevel, dict []string) *Tokenizer {
	t := &Tokenizer{wordLevel: wordLevel, boundaries: defaultSentenceBoundaries}
	if wordLevel != config.WordLevelWord {
		return t
	}
	if len(dict) == 0 {
		dict = defaultDictionary
	}
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: false,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
		DFA:                  true,
	})
	t.ac = builder.Build(dict)
	t.hasAC = true
	return t
}

// Paragraphs splits on newlines, per spec §4.1.
func (t *Tokenizer) Paragraphs(text string) []string {
	return strings.Split(text, "\n")
}

// Sentences splits a paragraph on the configured sentence-boundary runes,
// dropping the boundary characters themselves.
func (t *Tokenizer) Sentences(paragraph string) []string {
	var sentences []string
	var cur strings.Builder
	for _, r := range paragraph {
		if t.boundaries[r] {
			sentences = append(sentences, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteRune(r)
	}
	sentences = append(sentences, cur.String())
	return sentences
}

// Words segments a sentence into word tokens. Contiguous Latin-script
// runs become single lowercase-destined words (lowercasing itself is
// token.Normalize's job); contiguous non-Latin runs are segmented per
// wordLevel; everything else (punctuation, whitespace) is yielded
// rune-by-rune so the indexing layer can drop it.
func (t *Tokenizer) Words(sentence string) []string {
	var words []string
	runs := splitRuns(sentence)
	for _, run := range runs {
		switch run.kind {
		case runLatin:
			words = append(words, run.text)
		case runOther:
			for _, r := range run.text {
				words = append(words, string(r))
			}
		case runHan:
			words = append(words, t.segmentHan(run.text)...)
		}
	}
	return words
}

func (t *Tokenizer) segmentHan(s string) []string {
	if t.wordLevel != config.WordLevelWord || !t.hasAC {
		return splitRunes(s)
	}
	matches := t.ac.FindAll(s)
	var out []string
	pos := 0
	for _, m := range matches {
		if m.Start() < pos {
			continue // overlaps a match already consumed
		}
		if m.Start() > pos {
			out = append(out, splitRunes(s[pos:m.Start()])...)
		}
		out = append(out, s[m.Start():m.End()])
		pos = m.End()
	}
	if pos < len(s) {
		out = append(out, splitRunes(s[pos:])...)
	}
	return out
}

func splitRunes(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

type runKind int

const (
	runLatin runKind = iota
	runHan
	runOther
)

type run struct {
	kind runKind
	text string
}

func classify(r rune) runKind {
	switch {
	case unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) || r == '\'':
		return runLatin
	case unicode.IsLetter(r):
		return runHan
	default:
		return runOther
	}
}

// splitRuns groups a sentence into maximal runs of the same runKind.
func splitRuns(s string) []run {
	var runs []run
	var cur strings.Builder
	curKind := runOther
	started := false
	flush := func() {
		if started && cur.Len() > 0 {
			runs = append(runs, run{kind: curKind, text: cur.String()})
		}
		cur.Reset()
	}
	for _, r := range s {
		k := classify(r)
		if !started {
			curKind = k
			started = true
		} else if k != curKind {
			flush()
			curKind = k
		}
		cur.WriteRune(r)
	}
	flush()
	return runs
}
