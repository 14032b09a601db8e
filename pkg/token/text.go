// Package token builds the immutable, indexed token stream and its
// inverted index that the matching engine runs against. Tokenization
// itself (paragraph/sentence/word segmentation) is delegated to a
// Tokenizer implementation — the core is language-agnostic past that
// boundary, per spec §1's explicit scoping of the segmenter as an
// external collaborator.
package token

import (
	"unicode"

	"github.com/ovixiao/lre/pkg/index"
	"github.com/ovixiao/lre/pkg/result"
)

// Tokenizer splits raw text into paragraphs, sentences and words. Word
// output may still contain punctuation; TokenizedText drops it during
// indexing (spec §3.2) so a Tokenizer implementation does not need to
// know about the engine's indexing rules.
type Tokenizer interface {
	Paragraphs(text string) []string
	Sentences(paragraph string) []string
	Words(sentence string) []string
}

// TokenizedText is the immutable, indexed view of one document: an
// ordered word list plus an inverted index (word_map) from surface form
// to its posting list. It mirrors lre.text.Text from the reference.
type TokenizedText struct {
	words   []string
	indices []index.Index
	postmap map[string]*Postings
}

// Build tokenizes text with tz and constructs the inverted index.
// Punctuation tokens are dropped; tokens whose letters are all Latin
// script are lowercased before indexing, matching the reference's eng-branch
// handling in nlp_zh.sent2word.
func Build(tz Tokenizer, text string) *TokenizedText {
	tt := &TokenizedText{postmap: make(map[string]*Postings)}
	offset := 0
	for iPara, para := range tz.Paragraphs(text) {
		for iSent, sent := range tz.Sentences(para) {
			iWord := 0
			for _, raw := range tz.Words(sent) {
				if IsPunctuation(raw) {
					continue
				}
				word := Normalize(raw)
				idx := index.New(iPara, iSent, iWord, offset)
				tt.words = append(tt.words, word)
				tt.indices = append(tt.indices, idx)
				tt.posting(word).Add(uint32(offset))
				iWord++
				offset++
			}
		}
	}
	return tt
}

func (tt *TokenizedText) posting(word string) *Postings {
	p, ok := tt.postmap[word]
	if !ok {
		p = &Postings{}
		tt.postmap[word] = p
	}
	return p
}

// IsPunctuation reports whether a raw token from the tokenizer is pure
// punctuation/symbol noise that should never reach the inverted index —
// this covers ASCII and full-width punctuation alike. Exported so
// KeywordArg compilation (pkg/rule) can re-tokenize a keyword literal the
// exact same way a document's words were indexed.
func IsPunctuation(word string) bool {
	if word == "" {
		return true
	}
	for _, r := range word {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Normalize lowercases tokens in which every letter is Latin script
// (digits and symbols may also be present) and leaves tokens containing
// any other script untouched, per spec §3.2.
func Normalize(word string) string {
	isAllLatinLetters := true
	for _, r := range word {
		if unicode.IsLetter(r) && !unicode.Is(unicode.Latin, r) {
			isAllLatinLetters = false
			break
		}
	}
	if isAllLatinLetters {
		return toLowerASCIIAware(word)
	}
	return word
}

func toLowerASCIIAware(s string) string {
	out := []rune(s)
	for i, r := range out {
		out[i] = unicode.ToLower(r)
	}
	return string(out)
}

// Len returns the number of indexed tokens.
func (tt *TokenizedText) Len() int {
	return len(tt.words)
}

// Empty reports whether the document produced no tokens.
func (tt *TokenizedText) Empty() bool {
	return len(tt.words) == 0
}

// WordList exposes the underlying ordered token slice; Results hold a
// reference to it for surface rendering.
func (tt *TokenizedText) WordList() []string {
	return tt.words
}

// TokenAt returns the token and its Index at a given absolute offset.
func (tt *TokenizedText) TokenAt(offset int) (string, index.Index) {
	return tt.words[offset], tt.indices[offset]
}

// Lookup returns the posting set for a token as single-token Results,
// i.e. the inverted-index entry spec §4.1's lookup operation describes.
// Absent tokens yield an empty, non-nil Set.
func (tt *TokenizedText) Lookup(word string) *result.Set {
	set := result.NewSet()
	p, ok := tt.postmap[word]
	if !ok {
		return set
	}
	for _, off := range p.Offsets() {
		idx := tt.indices[off]
		set.Add(result.New(tt.words, idx, idx, 0))
	}
	return set
}
