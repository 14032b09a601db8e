// Package index defines the positional coordinate every token and every
// matched span is addressed by.
package index

import "fmt"

// Index identifies one token in a document: its paragraph, sentence and
// word ordinals plus its absolute offset across the whole document. It
// mirrors lre.text.index.Index from the reference implementation, kept
// as a tiny leaf package so both the token model and the result model can
// depend on it without a cycle between them.
type Index struct {
	IPara  int
	ISent  int
	IWord  int
	Offset int
}

// New builds an Index from its four coordinates.
func New(iPara, iSent, iWord, offset int) Index {
	return Index{IPara: iPara, ISent: iSent, IWord: iWord, Offset: offset}
}

// PSW returns the (paragraph, sentence, word) triple that Index ordering
// and equality for those components are based on.
func (i Index) PSW() [3]int {
	return [3]int{i.IPara, i.ISent, i.IWord}
}

// Less reports whether i sorts before o, lexicographically on
// (i_para, i_sent, i_word). Offset must already agree with this order by
// construction (spec invariant), so it is not consulted here.
func (i Index) Less(o Index) bool {
	a, b := i.PSW(), o.PSW()
	for k := 0; k < 3; k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return false
}

// Equal reports whether i and o identify the same token.
func (i Index) Equal(o Index) bool {
	return i.IPara == o.IPara && i.ISent == o.ISent && i.IWord == o.IWord && i.Offset == o.Offset
}

func (i Index) String() string {
	return fmt.Sprintf("Index(%d,%d,%d,%d)", i.IPara, i.ISent, i.IWord, i.Offset)
}
