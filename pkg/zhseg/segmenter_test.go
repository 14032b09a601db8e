package zhseg

import (
	"testing"

	"github.com/ovixiao/lre/pkg/config"
)

func TestSentences_SplitsOnConfiguredBoundaries(t *testing.T) {
	tz := New(config.WordLevelChar, nil)
	got := tz.Sentences("你好。再见！谢谢")
	want := []string{"你好", "再见", "谢谢"}
	if len(got) != len(want) {
		t.Fatalf("Sentences() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sentences()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWords_CharModeSplitsEveryHanzi(t *testing.T) {
	tz := New(config.WordLevelChar, nil)
	got := tz.Words("安装好")
	want := []string{"安", "装", "好"}
	if len(got) != len(want) {
		t.Fatalf("Words() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWords_WordModePrefersDictionaryMatch(t *testing.T) {
	tz := New(config.WordLevelWord, []string{"安装"})
	got := tz.Words("安装好")
	want := []string{"安装", "好"}
	if len(got) != len(want) {
		t.Fatalf("Words() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWords_LatinRunStaysOneToken(t *testing.T) {
	tz := New(config.WordLevelChar, nil)
	got := tz.Words("hello world")
	if len(got) < 3 {
		t.Fatalf("Words() = %v, want at least 3 tokens (hello, space, world)", got)
	}
	if got[0] != "hello" {
		t.Errorf("Words()[0] = %q, want %q", got[0], "hello")
	}
}

func TestParagraphs_SplitsOnNewline(t *testing.T) {
	tz := New(config.WordLevelChar, nil)
	got := tz.Paragraphs("one\ntwo\nthree")
	if len(got) != 3 {
		t.Fatalf("Paragraphs() = %v, want 3 entries", got)
	}
}
