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
	"fmt"

	"github.com/spf13/cobra"

	adapterrepo "github.com/eslsoft/lingobot/internal/adapter/repository"
	"github.com/eslsoft/lingobot/internal/entity"
	"github.com/eslsoft/lingobot/internal/infrastructure/config"
	"github.com/eslsoft/lingobot/internal/infrastructure/database"
	"github.com/eslsoft/lingobot/internal/usecase"
)

// sweepCmd removes confusion scores whose weight decayed to the floor.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove confusion scores at or below a weight threshold",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		threshold, _ := cmd.Flags().GetFloat64("threshold")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		client, cleanup, err := database.NewEntClient(cfg)
		if err != nil {
			return fmt.Errorf("create ent client: %w", err)
		}
		defer cleanup()

		confusion := usecase.NewConfusionUsecase(adapterrepo.NewConfusionRepository(client))
		removed, err := confusion.Sweep(ctx, threshold)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "removed %d confusion scores\n", removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().Float64("threshold", entity.ConfusionMinWeight, "delete scores with weight at or below this value")
}
