package cmd

import (
	"context"
	"strings"
	"testing"

	"github.com/eslsoft/lingobot/internal/entity"
)

type stubContentRepo struct {
	words map[string]*entity.Word
}

func (s *stubContentRepo) RandomWord(ctx context.Context, lesson int32) (*entity.Word, error) {
	return nil, nil
}

func (s *stubContentRepo) RandomWords(ctx context.Context, excludeIDs []int64, lesson int32, count int) ([]*entity.Word, error) {
	return nil, nil
}

func (s *stubContentRepo) FindWordByText(ctx context.Context, text string) (*entity.Word, error) {
	return s.words[strings.ToLower(text)], nil
}

func (s *stubContentRepo) RandomSentence(ctx context.Context, lesson int32) (*entity.Sentence, error) {
	return nil, nil
}

func (s *stubContentRepo) RandomRelationPair(ctx context.Context) (*entity.RelationPair, error) {
	return nil, nil
}

func (s *stubContentRepo) Lessons(ctx context.Context) ([]int32, error) { return nil, nil }

func (s *stubContentRepo) Pages(ctx context.Context, lesson int32) ([]*entity.Page, error) {
	return nil, nil
}

func (s *stubContentRepo) PageByID(ctx context.Context, id int64) (*entity.Page, error) {
	return nil, nil
}

func TestDecodeSeed_ValidFile(t *testing.T) {
	in := `{
		"words": [
			{"english": "cat", "russian": "кошка", "lesson": 1},
			{"english": "big", "russian": "большой", "alternates": ["крупный"]}
		],
		"sentences": [{"text": "Я вижу кошку", "translation": "i see a cat", "lesson": 1}],
		"pages": [{"lesson": 1, "number": 1, "message_ref": 42, "name": "Интро"}],
		"relations": [{"source": "big", "target": "large", "type": "synonym"}]
	}`

	seed, err := decodeSeed(strings.NewReader(in))
	if err != nil {
		t.Fatalf("decodeSeed: %v", err)
	}
	if len(seed.Words) != 2 || len(seed.Sentences) != 1 || len(seed.Pages) != 1 || len(seed.Relations) != 1 {
		t.Fatalf("unexpected counts: %d words, %d sentences, %d pages, %d relations",
			len(seed.Words), len(seed.Sentences), len(seed.Pages), len(seed.Relations))
	}
	if seed.Words[1].Alternates[0] != "крупный" {
		t.Errorf("alternates not decoded: %v", seed.Words[1].Alternates)
	}
	if seed.Pages[0].MessageRef != 42 {
		t.Errorf("message_ref = %d, want 42", seed.Pages[0].MessageRef)
	}
}

func TestDecodeSeed_RejectsUnknownRelationType(t *testing.T) {
	in := `{"relations": [{"source": "big", "target": "large", "type": "homonym"}]}`

	if _, err := decodeSeed(strings.NewReader(in)); err == nil {
		t.Fatal("expected error for unsupported relation type")
	}
}

func TestDecodeSeed_RejectsMissingEndpoints(t *testing.T) {
	in := `{"relations": [{"source": "", "target": "large", "type": "synonym"}]}`

	if _, err := decodeSeed(strings.NewReader(in)); err == nil {
		t.Fatal("expected error for empty relation endpoint")
	}
}

func TestDecodeSeed_RejectsUnknownFields(t *testing.T) {
	in := `{"vocabulary": []}`

	if _, err := decodeSeed(strings.NewReader(in)); err == nil {
		t.Fatal("expected error for unknown top-level field")
	}
}

func TestResolveRelations_SkipsUnknownWords(t *testing.T) {
	repo := &stubContentRepo{words: map[string]*entity.Word{
		"big":   {ID: 1, English: "big", Russian: "большой"},
		"large": {ID: 2, English: "large", Russian: "крупный"},
	}}

	rels := []seedRelation{
		{Source: "big", Target: "large", Type: "synonym"},
		{Source: "big", Target: "huge", Type: "synonym"},
	}

	pairs, skipped, err := resolveRelations(context.Background(), repo, rels)
	if err != nil {
		t.Fatalf("resolveRelations: %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(pairs) != 1 {
		t.Fatalf("pairs = %d, want 1", len(pairs))
	}
	if pairs[0].Word.ID != 1 || pairs[0].Related.ID != 2 || pairs[0].Type != entity.RelationSynonym {
		t.Errorf("unexpected pair: %+v", pairs[0])
	}
}
