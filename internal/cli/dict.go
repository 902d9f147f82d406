package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"textkit/internal/dict"
	"textkit/internal/usecase"
)

var (
	dictPath   string
	dictPerDoc bool
	dictJSON   bool
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Apply a dictionary to the corpus",
	Long: `Load a YAML dictionary mapping keys to glob patterns and count how
often each key's patterns occur, either corpus-wide or per document.

Dictionary format:
  positive: [good, great, fortunate*]
  negative: [bad, awful, unfortunate*]

Examples:
  textkit dict -f sentiment.yaml
  textkit dict -f sentiment.yaml --per-doc`,
	RunE: runDict,
}

func init() {
	rootCmd.AddCommand(dictCmd)
	dictCmd.Flags().StringVarP(&dictPath, "file", "f", "", "dictionary YAML file (default from config)")
	dictCmd.Flags().BoolVar(&dictPerDoc, "per-doc", false, "report counts per document")
	dictCmd.Flags().BoolVar(&dictJSON, "json", false, "output as JSON")
}

func runDict(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	path := cfg.Dict.Path
	if dictPath != "" {
		path = dictPath
	}
	if path == "" {
		return fmt.Errorf("no dictionary given, use --file or set dict.path in config")
	}

	d, err := dict.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
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

	if dictPerDoc {
		keyed, err := d.Apply(m)
		if err != nil {
			return fmt.Errorf("dictionary lookup failed: %w", err)
		}
		if dictJSON {
			type row struct {
				DocID  string             `json:"doc_id"`
				Counts map[string]float64 `json:"counts"`
			}
			out := make([]row, keyed.NDocs())
			for i, id := range keyed.DocIDs() {
				counts := make(map[string]float64, keyed.NFeatures())
				for j, key := range keyed.Features() {
					counts[key] = keyed.At(i, j)
				}
				out[i] = row{DocID: id, Counts: counts}
			}
			output, _ := json.MarshalIndent(out, "", "  ")
			fmt.Println(string(output))
			return nil
		}
		fmt.Printf("%-20s", "document")
		for _, key := range keyed.Features() {
			fmt.Printf(" %12s", key)
		}
		fmt.Println()
		for i, id := range keyed.DocIDs() {
			fmt.Printf("%-20s", id)
			for j := range keyed.Features() {
				fmt.Printf(" %12.0f", keyed.At(i, j))
			}
			fmt.Println()
		}
		return nil
	}

	totals := d.Totals(m)
	if dictJSON {
		output, _ := json.MarshalIndent(totals, "", "  ")
		fmt.Println(string(output))
		return nil
	}
	fmt.Printf("%-20s %10s\n", "key", "count")
	for _, sf := range totals {
		fmt.Printf("%-20s %10.0f\n", sf.Feature, sf.Score)
	}
	return nil
}
