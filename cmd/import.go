/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	adapterrepo "github.com/eslsoft/lingobot/internal/adapter/repository"
	"github.com/eslsoft/lingobot/internal/entity"
	"github.com/eslsoft/lingobot/internal/infrastructure/config"
	"github.com/eslsoft/lingobot/internal/infrastructure/database"
	"github.com/eslsoft/lingobot/internal/repository"
)

// seedRelation references its endpoints by word text so seed files stay
// readable; endpoints are resolved against the words table during import.
type seedRelation struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

type seedFile struct {
	Words     []*entity.Word     `json:"words"`
	Sentences []*entity.Sentence `json:"sentences"`
	Pages     []*entity.Page     `json:"pages"`
	Relations []seedRelation     `json:"relations"`
}

// importCmd seeds study content from a JSON file
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Seed words, sentences, pages and relations from a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		inputPath, _ := cmd.Flags().GetString("input")
		if inputPath == "" {
			return fmt.Errorf("--input is required (use - for stdin)")
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		client, cleanup, err := database.NewEntClient(cfg)
		if err != nil {
			return fmt.Errorf("create ent client: %w", err)
		}
		defer cleanup()

		if err := client.Schema.Create(ctx); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		var reader io.Reader = cmd.InOrStdin()
		if inputPath != "-" {
			file, err := os.Open(filepath.Clean(inputPath))
			if err != nil {
				return fmt.Errorf("open seed file: %w", err)
			}
			defer file.Close()
			reader = file
		}
		if strings.HasSuffix(strings.ToLower(inputPath), ".gz") {
			gzr, err := gzip.NewReader(reader)
			if err != nil {
				return fmt.Errorf("create gzip reader: %w", err)
			}
			defer gzr.Close()
			reader = gzr
		}

		seed, err := decodeSeed(reader)
		if err != nil {
			return fmt.Errorf("decode seed file: %w", err)
		}

		writer := adapterrepo.NewContentWriter(client)
		content := adapterrepo.NewContentRepository(client)

		words, err := writer.CreateWords(ctx, seed.Words)
		if err != nil {
			return fmt.Errorf("import words: %w", err)
		}
		sentences, err := writer.CreateSentences(ctx, seed.Sentences)
		if err != nil {
			return fmt.Errorf("import sentences: %w", err)
		}
		pages, err := writer.CreatePages(ctx, seed.Pages)
		if err != nil {
			return fmt.Errorf("import pages: %w", err)
		}

		pairs, skipped, err := resolveRelations(ctx, content, seed.Relations)
		if err != nil {
			return fmt.Errorf("resolve relations: %w", err)
		}
		relations, err := writer.CreateRelations(ctx, pairs)
		if err != nil {
			return fmt.Errorf("import relations: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(),
			"imported %d words, %d sentences, %d pages, %d relations (%d relations skipped)\n",
			words, sentences, pages, relations, skipped)
		return nil
	},
}

func decodeSeed(r io.Reader) (*seedFile, error) {
	var seed seedFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&seed); err != nil {
		return nil, err
	}
	for i, rel := range seed.Relations {
		if rel.Source == "" || rel.Target == "" {
			return nil, fmt.Errorf("relation %d: source and target are required", i)
		}
		if _, ok := entity.ParseRelationType(rel.Type); !ok {
			return nil, fmt.Errorf("relation %d: unsupported type %q", i, rel.Type)
		}
	}
	return &seed, nil
}

// resolveRelations maps text-referenced relations onto word rows. Relations
// whose endpoints are not in the words table are counted and skipped rather
// than failing the whole import.
func resolveRelations(ctx context.Context, content repository.ContentRepository, rels []seedRelation) ([]*entity.RelationPair, int, error) {
	var pairs []*entity.RelationPair
	skipped := 0
	for _, rel := range rels {
		source, err := content.FindWordByText(ctx, rel.Source)
		if err != nil {
			return nil, 0, fmt.Errorf("look up %q: %w", rel.Source, err)
		}
		target, err := content.FindWordByText(ctx, rel.Target)
		if err != nil {
			return nil, 0, fmt.Errorf("look up %q: %w", rel.Target, err)
		}
		if source == nil || target == nil {
			skipped++
			continue
		}
		relType, _ := entity.ParseRelationType(rel.Type)
		pairs = append(pairs, &entity.RelationPair{Word: *source, Type: relType, Related: *target})
	}
	return pairs, skipped, nil
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().String("input", "", "seed JSON file (.gz supported, - for stdin)")
}
