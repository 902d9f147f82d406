package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"textkit/internal/usecase"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored corpus statistics",
	Long: `Print summary statistics for the stored corpus: document and token
counts, vocabulary size, and the document variables present.

Examples:
  textkit stats
  textkit stats --json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.GetStats()
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}
	docs, err := st.ListDocuments()
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	varNames := make(map[string]struct{})
	for _, d := range docs {
		for name := range d.Vars {
			varNames[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(varNames))
	for name := range varNames {
		names = append(names, name)
	}
	sort.Strings(names)

	if statsJSON {
		out := struct {
			TotalDocs   int                 `json:"total_docs"`
			TotalTokens int                 `json:"total_tokens"`
			VocabSize   int                 `json:"vocab_size"`
			AvgDocLen   float64             `json:"avg_doc_len"`
			DocVars     map[string][]string `json:"doc_vars"`
		}{
			TotalDocs:   stats.TotalDocs,
			TotalTokens: stats.TotalTokens,
			VocabSize:   stats.VocabSize,
			AvgDocLen:   stats.AvgDocLen,
			DocVars:     make(map[string][]string),
		}
		for _, name := range names {
			out.DocVars[name] = usecase.DocVarValues(docs, name)
		}
		output, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Corpus statistics:\n")
	fmt.Printf("  Documents:       %d\n", stats.TotalDocs)
	fmt.Printf("  Total tokens:    %d\n", stats.TotalTokens)
	fmt.Printf("  Vocabulary size: %d\n", stats.VocabSize)
	fmt.Printf("  Avg doc length:  %.1f tokens\n", stats.AvgDocLen)

	if len(names) > 0 {
		fmt.Printf("\nDocument variables:\n")
		for _, name := range names {
			values := usecase.DocVarValues(docs, name)
			if len(values) > 8 {
				fmt.Printf("  %-12s %d distinct values\n", name, len(values))
			} else {
				fmt.Printf("  %-12s %v\n", name, values)
			}
		}
	}
	return nil
}
