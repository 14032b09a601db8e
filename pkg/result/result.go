// Package result implements the matched-span value type and the
// deduplicated set it is collected into, mirroring lre.result.Result /
// lre.result.Results from the reference implementation.
package result

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ovixiao/lre/pkg/index"
)

// Result is a matched, contiguous-by-offset span of a document.
//
// WordList is a read-only back-reference to the owning document's token
// sequence; Result never copies it. Equality is on (Beg, End, Bias) only —
// two Results sharing a WordList are expected, since every Result born of
// the same TokenizedText shares the same slice header.
type Result struct {
	WordList []string
	Beg      index.Index
	End      index.Index
	Bias     int
}

// New builds a Result. bias must already satisfy the spec's "excess
// length beyond 1" contract (see §3.5); callers building leaf keyword
// results always pass 0.
func New(wordList []string, beg, end index.Index, bias int) Result {
	return Result{WordList: wordList, Beg: beg, End: end, Bias: bias}
}

// key is the comparison/hash identity of a Result: (beg, end, bias).
type key struct {
	beg, end [3]int
	begOff   int
	endOff   int
	bias     int
}

func (r Result) key() key {
	return key{
		beg:    r.Beg.PSW(),
		end:    r.End.PSW(),
		begOff: r.Beg.Offset,
		endOff: r.End.Offset,
		bias:   r.Bias,
	}
}

// Len returns the length of the span per spec §3.3: the raw offset span
// minus the bias correction.
func (r Result) Len() int {
	return r.End.Offset - r.Beg.Offset + 1 - r.Bias
}

// Overlap reports whether r and o share at least one offset.
func (r Result) Overlap(o Result) bool {
	return r.End.Offset >= o.Beg.Offset && o.End.Offset >= r.Beg.Offset
}

// MatchedWords returns the raw tokens the span covers (ignoring bias,
// which only affects logical length accounting, never the underlying
// slice).
func (r Result) MatchedWords() []string {
	return r.WordList[r.Beg.Offset : r.End.Offset+1]
}

// Text renders the span's surface form. Adjacent tokens are joined with a
// single space when either one touches Latin script (spec §3.3); CJK
// tokens otherwise join with no separator, preserving their typography.
func (r Result) Text() string {
	return Join(r.MatchedWords())
}

func (r Result) String() string {
	return fmt.Sprintf("Result(text=%s, beg=%s, end=%s, bias=%d)", r.Text(), r.Beg, r.End, r.Bias)
}

// isLatin tests the Unicode blocks spec §3.3 names: Latin, Latin-1
// Supplement, Latin Extended-A/B, IPA Extensions, Phonetic Extensions,
// Latin Extended Additional, Superscripts/Latin Extended-D-ish ranges
// used by the reference, halfwidth/fullwidth forms and ligature blocks.
func isLatin(r rune) bool {
	switch {
	case r <= 0x007F, 0x0080 <= r && r <= 0x00FF, 0x0100 <= r && r <= 0x017F,
		0x0180 <= r && r <= 0x024F, 0x2C60 <= r && r <= 0x2C7F, 0xA720 <= r && r <= 0xA7FF,
		0xAB30 <= r && r <= 0xAB6F, 0x1E00 <= r && r <= 0x1EFF, 0xFF00 <= r && r <= 0xFFEF,
		0xFB00 <= r && r <= 0xFB4F, 0x0250 <= r && r <= 0x02AF, 0x1D00 <= r && r <= 0x1D7F,
		0x1D80 <= r && r <= 0x1DBF:
		return true
	default:
		return unicode.Is(unicode.Latin, r)
	}
}

// Join concatenates tokens the way the reference's Result.zh_join does:
// a space is inserted between two adjacent tokens when the left one ends,
// or the right one begins, with a Latin-script rune.
func Join(words []string) string {
	if len(words) == 0 {
		return ""
	}
	if len(words) == 1 {
		return words[0]
	}
	var b strings.Builder
	b.WriteString(words[0])
	for i := 1; i < len(words); i++ {
		prev := []rune(words[i-1])
		curr := []rune(words[i])
		if len(prev) > 0 && len(curr) > 0 && (isLatin(prev[len(prev)-1]) || isLatin(curr[0])) {
			b.WriteByte(' ')
		}
		b.WriteString(words[i])
	}
	return b.String()
}
