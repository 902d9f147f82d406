package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"textkit/internal/stats"
	"textkit/internal/usecase"
)

var (
	similDoc    string
	similMethod string
	similTop    int
	similWeight string
	similJSON   bool
)

var similCmd = &cobra.Command{
	Use:   "simil",
	Short: "Find documents similar to a given document",
	Long: `Rank the stored documents by similarity to a chosen document, using
cosine or Jaccard similarity over the document-feature matrix.

Examples:
  textkit simil --doc speech_2017.txt
  textkit simil --doc speech_2017.txt --method jaccard --top 5
  textkit simil --doc speech_2017.txt --weight tfidf`,
	RunE: runSimil,
}

func init() {
	rootCmd.AddCommand(similCmd)
	similCmd.Flags().StringVar(&similDoc, "doc", "", "document ID to compare against (required)")
	similCmd.Flags().StringVarP(&similMethod, "method", "m", "cosine", "similarity method: cosine or jaccard")
	similCmd.Flags().IntVarP(&similTop, "top", "t", 10, "number of neighbours to show")
	similCmd.Flags().StringVar(&similWeight, "weight", "", "weighting applied before comparison: count, prop or tfidf")
	similCmd.Flags().BoolVar(&similJSON, "json", false, "output as JSON")
	similCmd.MarkFlagRequired("doc")
}

func runSimil(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	analyzeUC := usecase.NewAnalyzeUseCase(st)
	m, err := analyzeUC.BuildMatrix(usecase.MatrixOptions{Weighting: similWeight})
	if err != nil {
		return err
	}

	neighbours, err := stats.Neighbours(m, similDoc, similMethod, similTop)
	if err != nil {
		return fmt.Errorf("similarity failed: %w", err)
	}

	if similJSON {
		output, _ := json.MarshalIndent(neighbours, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Documents most similar to %s (%s):\n\n", similDoc, similMethod)
	fmt.Printf("%-32s %10s\n", "document", "score")
	for _, n := range neighbours {
		fmt.Printf("%-32s %10.4f\n", n.DocID, n.Score)
	}
	return nil
}
