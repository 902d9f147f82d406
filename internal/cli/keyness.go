package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"textkit/internal/stats"
	"textkit/internal/usecase"
)

var (
	keynessVar     string
	keynessTarget  string
	keynessMeasure string
	keynessTop     int
	keynessJSON    bool
)

var keynessCmd = &cobra.Command{
	Use:   "keyness",
	Short: "Find features distinctive of a corpus partition",
	Long: `Partition the stored corpus by a document variable and compute a
keyness statistic for every feature: positive scores mark features
over-represented in the target partition, negative scores features
over-represented in the reference.

Measures: chi2 (chi-squared with Yates correction) or lr (log-likelihood).

Examples:
  textkit keyness --var president --target Trump
  textkit keyness --var year --target 2020 --measure lr`,
	RunE: runKeyness,
}

func init() {
	rootCmd.AddCommand(keynessCmd)
	keynessCmd.Flags().StringVar(&keynessVar, "var", "", "document variable to partition by (default from config)")
	keynessCmd.Flags().StringVar(&keynessTarget, "target", "", "variable value marking the target partition (default from config)")
	keynessCmd.Flags().StringVar(&keynessMeasure, "measure", "", "statistic: chi2 or lr (default from config)")
	keynessCmd.Flags().IntVarP(&keynessTop, "top", "t", 20, "number of features to show per side")
	keynessCmd.Flags().BoolVar(&keynessJSON, "json", false, "output as JSON")
}

func runKeyness(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	varName := cfg.Keyness.Var
	if keynessVar != "" {
		varName = keynessVar
	}
	target := cfg.Keyness.Target
	if keynessTarget != "" {
		target = keynessTarget
	}
	measure := cfg.Keyness.Measure
	if keynessMeasure != "" {
		measure = keynessMeasure
	}
	if varName == "" || target == "" {
		return fmt.Errorf("keyness needs --var and --target (or keyness.var and keyness.target in config)")
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	analyzeUC := usecase.NewAnalyzeUseCase(st)
	m, err := analyzeUC.BuildMatrix(usecase.MatrixOptions{})
	if err != nil {
		return err
	}

	results, err := stats.Keyness(m, varName, target, measure)
	if err != nil {
		return fmt.Errorf("keyness failed: %w", err)
	}

	if keynessJSON {
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Keyness (%s), target: %s = %s\n\n", measure, varName, target)
	fmt.Printf("%-24s %10s %10s %8s %8s\n", "feature", "stat", "p", "target", "ref")
	shown := 0
	for _, r := range results {
		if r.Stat <= 0 {
			break
		}
		fmt.Printf("%-24s %10.3f %10.4g %8d %8d\n", r.Feature, r.Stat, r.P, r.TargetN, r.ReferenceN)
		shown++
		if shown >= keynessTop {
			break
		}
	}

	fmt.Printf("\nReference-favoring:\n")
	shown = 0
	for i := len(results) - 1; i >= 0; i-- {
		r := results[i]
		if r.Stat >= 0 {
			break
		}
		fmt.Printf("%-24s %10.3f %10.4g %8d %8d\n", r.Feature, r.Stat, r.P, r.TargetN, r.ReferenceN)
		shown++
		if shown >= keynessTop {
			break
		}
	}
	return nil
}
