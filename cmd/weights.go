package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-fb-metrics/internal/category"
	"github.com/pable/go-fb-metrics/internal/report"
	"github.com/pable/go-fb-metrics/internal/weights"
)

var weightsCmd = &cobra.Command{
	Use:   "weights <category>",
	Short: "Show a category's weight table and which weights are ignored",
	Long: `Load the weight table of one category (defense, attack or passing) and
list every feature with its weight. Weights whose feature name is not a column
of the category's stat table are marked "ignored": they never affect a score.`,
	Args: cobra.ExactArgs(1),
	RunE: runWeights,
}

func runWeights(cmd *cobra.Command, args []string) error {
	cat, err := category.Lookup(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := cfg.For(cat).Weights
	t, err := weights.Load(path)
	if err != nil {
		return fmt.Errorf("load %s weights: %w", cat.Name(), err)
	}

	fmt.Fprintf(os.Stdout, "\n%s weights from %s\n\n", cat.Name(), path)
	report.PrintWeightTable(os.Stdout, t, cat.HasFeature)

	var unweighted []string
	for _, f := range cat.Features() {
		if _, ok := t[f]; !ok {
			unweighted = append(unweighted, f)
		}
	}
	if len(unweighted) > 0 {
		fmt.Fprintf(os.Stdout, "\nFeatures with no weight (contribute 0): %s\n", strings.Join(unweighted, ", "))
	}
	return nil
}
