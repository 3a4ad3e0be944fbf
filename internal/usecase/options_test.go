package usecase

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/eslsoft/lingobot/internal/entity"
)

func TestGenerate_CorrectAppearsExactlyOnce(t *testing.T) {
	gen := NewOptionGenerator(rand.New(rand.NewSource(42)))
	correct := Candidate{Text: "собака", WordID: 2}
	pool := []Candidate{
		{Text: "Собака!", WordID: 9}, // normalizes equal to the correct answer
		{Text: "кошка", WordID: 1},
		{Text: "дом", WordID: 3},
		{Text: "кошка", WordID: 4}, // duplicate text
		{Text: "вода", WordID: 5},
	}

	options, idx := gen.Generate(correct, pool, 3, nil)
	if len(options) != 4 {
		t.Fatalf("expected 4 options, got %v", options)
	}
	hits := 0
	for _, opt := range options {
		if entity.AnswersEqual(opt.Text, correct.Text) {
			hits++
		}
	}
	if hits != 1 {
		t.Fatalf("correct answer occurs %d times in %v", hits, options)
	}
	if !entity.AnswersEqual(options[idx].Text, correct.Text) {
		t.Fatalf("returned index %d does not point at the correct answer: %v", idx, options)
	}
}

func TestGenerate_ShortPoolDegrades(t *testing.T) {
	gen := NewOptionGenerator(rand.New(rand.NewSource(42)))
	correct := Candidate{Text: "bread", WordID: 5}

	options, idx := gen.Generate(correct, nil, 3, nil)
	if len(options) != 1 || idx != 0 {
		t.Fatalf("expected only the correct answer, got %v idx=%d", options, idx)
	}

	options, idx = gen.Generate(correct, []Candidate{{Text: "water", WordID: 4}}, 3, nil)
	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %v", options)
	}
	if !entity.AnswersEqual(options[idx].Text, "bread") {
		t.Fatalf("index %d misses the correct answer: %v", idx, options)
	}
}

func TestGenerate_DeterministicUnderSeed(t *testing.T) {
	correct := Candidate{Text: "cat", WordID: 1}
	pool := []Candidate{
		{Text: "dog", WordID: 2},
		{Text: "house", WordID: 3},
		{Text: "water", WordID: 4},
		{Text: "bread", WordID: 5},
	}

	a, ai := NewOptionGenerator(rand.New(rand.NewSource(7))).Generate(correct, pool, 3, nil)
	b, bi := NewOptionGenerator(rand.New(rand.NewSource(7))).Generate(correct, pool, 3, nil)
	if !reflect.DeepEqual(a, b) || ai != bi {
		t.Fatalf("same seed produced different option sets: %v/%d vs %v/%d", a, ai, b, bi)
	}
}

func TestGenerate_BiasPrefersConfusedWords(t *testing.T) {
	gen := NewOptionGenerator(rand.New(rand.NewSource(99)))
	correct := Candidate{Text: "cat", WordID: 1}
	pool := []Candidate{
		{Text: "dog", WordID: 2},
		{Text: "house", WordID: 3},
		{Text: "water", WordID: 4},
	}
	bias := map[int64]float64{3: entity.ConfusionMaxWeight}

	picked := 0
	const runs = 300
	for i := 0; i < runs; i++ {
		options, _ := gen.Generate(correct, pool, 1, bias)
		for _, opt := range options {
			if opt.WordID == 3 {
				picked++
			}
		}
	}
	// Weight 0.99+0.05 against two candidates at 0.05 each; well above 80%
	// in expectation, so half is a safe lower bound.
	if picked < runs/2 {
		t.Fatalf("heavily confused word picked only %d/%d times", picked, runs)
	}
}
