package usecase

import (
	"math/rand"
	"sync"

	"github.com/eslsoft/lingobot/internal/entity"
)

// Candidate is one multiple-choice option. WordID is the backing word when
// the option text came from the words table, 0 otherwise; word-backed wrong
// picks feed the confusion metric.
type Candidate struct {
	Text   string
	WordID int64
}

// OptionGenerator assembles shuffled multiple-choice option sets. The random
// source is injected so option order and distractor sampling are reproducible
// under test. All methods are safe for concurrent use.
type OptionGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewOptionGenerator(rng *rand.Rand) *OptionGenerator {
	return &OptionGenerator{rng: rng}
}

// Intn exposes the guarded random source for small engine decisions such as
// picking a translation direction.
func (g *OptionGenerator) Intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

// Generate draws up to k distractors from pool, appends the correct answer,
// shuffles and returns the options together with the post-shuffle index of
// the correct answer. Pool entries normalizing equal to the correct answer
// (or to each other) are dropped first, so the correct answer occurs exactly
// once. When bias carries a confusion weight for a candidate's word, that
// candidate is preferred with probability proportional to the weight;
// without bias data sampling is uniform. A short pool degrades gracefully:
// the result always contains at least the correct answer.
func (g *OptionGenerator) Generate(correct Candidate, pool []Candidate, k int, bias map[int64]float64) ([]Candidate, int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	correctNorm := entity.NormalizeAnswer(correct.Text)
	seen := map[string]struct{}{correctNorm: {}}
	cands := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		norm := entity.NormalizeAnswer(c.Text)
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		cands = append(cands, c)
	}

	options := append(g.sample(cands, k, bias), correct)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIdx := 0
	for i, opt := range options {
		if entity.NormalizeAnswer(opt.Text) == correctNorm {
			correctIdx = i
			break
		}
	}
	return options, correctIdx
}

// sample picks k candidates without replacement, weighting each by its
// confusion score plus a uniform base weight.
func (g *OptionGenerator) sample(cands []Candidate, k int, bias map[int64]float64) []Candidate {
	if k > len(cands) {
		k = len(cands)
	}
	if k <= 0 {
		return nil
	}

	remaining := make([]Candidate, len(cands))
	copy(remaining, cands)
	weights := make([]float64, len(remaining))
	for i, c := range remaining {
		w := entity.ConfusionIncrement
		if c.WordID != 0 {
			w += bias[c.WordID]
		}
		weights[i] = w
	}

	out := make([]Candidate, 0, k)
	for len(out) < k {
		total := 0.0
		for _, w := range weights {
			total += w
		}
		r := g.rng.Float64() * total
		idx := len(remaining) - 1
		for i, w := range weights {
			r -= w
			if r <= 0 {
				idx = i
				break
			}
		}
		out = append(out, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		weights = append(weights[:idx], weights[idx+1:]...)
	}
	return out
}
