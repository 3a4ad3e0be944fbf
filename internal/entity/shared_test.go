package entity

import (
	"reflect"
	"testing"
)

func TestNormalizeAnswer(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Hello", "hello"},
		{"  Hello,  World! ", "hello world"},
		{"don't", "dont"},
		{"Привет, мир!", "привет мир"},
		{"a\tb\nc", "a b c"},
		{"123!?", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeAnswer(c.in); got != c.want {
			t.Fatalf("NormalizeAnswer(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeAnswer_Idempotent(t *testing.T) {
	inputs := []string{"  Hello,  World! ", "Привет, мир!", "a\tb\nc", "уже нормально"}
	for _, in := range inputs {
		once := NormalizeAnswer(in)
		if twice := NormalizeAnswer(once); twice != once {
			t.Fatalf("normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestAnswersEqual(t *testing.T) {
	if !AnswersEqual("Hello, world!", "hello   WORLD") {
		t.Fatal("expected answers to compare equal after normalization")
	}
	if AnswersEqual("hello", "help") {
		t.Fatal("distinct answers must not compare equal")
	}
}

func TestTokenizeAnswer(t *testing.T) {
	got := TokenizeAnswer("The cat, sat!")
	if !reflect.DeepEqual(got, []string{"the", "cat", "sat"}) {
		t.Fatalf("unexpected tokens: %v", got)
	}
}

func TestDiffTokens(t *testing.T) {
	if d := DiffTokens([]string{"the", "cat", "sat"}, []string{"the", "cat", "sat"}); len(d) != 0 {
		t.Fatalf("expected empty diff, got %v", d)
	}
	d := DiffTokens([]string{"the", "dog", "sat"}, []string{"the", "cat", "sat"})
	if len(d) != 1 || d[0].Position != 2 || d[0].Got != "dog" || d[0].Expected != "cat" {
		t.Fatalf("unexpected diff: %v", d)
	}
	// length mismatch reports trailing positions against the empty string
	d = DiffTokens([]string{"the"}, []string{"the", "cat"})
	if len(d) != 1 || d[0].Position != 2 || d[0].Got != "" || d[0].Expected != "cat" {
		t.Fatalf("unexpected diff: %v", d)
	}
}

func TestCanonicalPair(t *testing.T) {
	if lo, hi := CanonicalPair(7, 3); lo != 3 || hi != 7 {
		t.Fatalf("got (%d,%d)", lo, hi)
	}
	if lo, hi := CanonicalPair(3, 7); lo != 3 || hi != 7 {
		t.Fatalf("got (%d,%d)", lo, hi)
	}
}

func TestClampConfusionWeight(t *testing.T) {
	if w := ClampConfusionWeight(1.5); w != ConfusionMaxWeight {
		t.Fatalf("got %v", w)
	}
	if w := ClampConfusionWeight(0); w != ConfusionMinWeight {
		t.Fatalf("got %v", w)
	}
	if w := ClampConfusionWeight(0.5); w != 0.5 {
		t.Fatalf("got %v", w)
	}
}
