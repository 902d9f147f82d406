package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"textkit/internal/usecase"
)

var (
	ngramsSize int
	ngramsMin  int
	ngramsTop  int
	ngramsJSON bool
)

var ngramsCmd = &cobra.Command{
	Use:   "ngrams",
	Short: "Show the most frequent n-grams",
	Long: `Form n-grams from the stored token streams and print the most
frequent ones. Tokens inside an n-gram are joined with "_".

Examples:
  textkit ngrams -n 2 --top 20
  textkit ngrams -n 3 --min 2`,
	RunE: runNGrams,
}

func init() {
	rootCmd.AddCommand(ngramsCmd)
	ngramsCmd.Flags().IntVarP(&ngramsSize, "size", "n", 2, "n-gram size")
	ngramsCmd.Flags().IntVar(&ngramsMin, "min", 0, "smallest n-gram size to include, down from --size (0 means --size only, 1 includes unigrams)")
	ngramsCmd.Flags().IntVarP(&ngramsTop, "top", "t", 20, "number of n-grams to show")
	ngramsCmd.Flags().BoolVar(&ngramsJSON, "json", false, "output as JSON")
}

func runNGrams(cmd *cobra.Command, args []string) error {
	if ngramsSize < 2 {
		return fmt.Errorf("n-gram size must be at least 2, got %d", ngramsSize)
	}

	min := ngramsMin
	if min == 0 {
		min = ngramsSize
	}
	if min < 1 || min > ngramsSize {
		return fmt.Errorf("--min must be between 1 and --size, got %d", ngramsMin)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	analyzeUC := usecase.NewAnalyzeUseCase(st)
	m, err := analyzeUC.BuildMatrix(usecase.MatrixOptions{
		NGramMin: min,
		NGramMax: ngramsSize,
	})
	if err != nil {
		return err
	}

	top := m.TopFeatures(ngramsTop)
	if ngramsJSON {
		output, _ := json.MarshalIndent(top, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("%-32s %10s\n", "ngram", "frequency")
	for _, sf := range top {
		fmt.Printf("%-32s %10.0f\n", sf.Feature, sf.Score)
	}
	return nil
}
