package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"textkit/internal/dfm"
	"textkit/internal/usecase"
)

var (
	freqTop     int
	freqNGrams  int
	freqMinTF   int
	freqMinDF   int
	freqMaxProp float64
	freqWeight  string
	freqGroup   string
	freqJSON    bool
)

var freqCmd = &cobra.Command{
	Use:   "freq",
	Short: "Show the most frequent features",
	Long: `Build a document-feature matrix from the stored corpus and print the
top features by frequency, optionally trimmed, weighted, expanded to
n-grams or grouped by a document variable.

Examples:
  textkit freq --top 20
  textkit freq --ngrams 2 --min-termfreq 5
  textkit freq --group party`,
	RunE: runFreq,
}

func init() {
	rootCmd.AddCommand(freqCmd)
	freqCmd.Flags().IntVarP(&freqTop, "top", "t", 20, "number of features to show")
	freqCmd.Flags().IntVar(&freqNGrams, "ngrams", 1, "form n-grams of this size")
	freqCmd.Flags().IntVar(&freqMinTF, "min-termfreq", 0, "drop features below this total count")
	freqCmd.Flags().IntVar(&freqMinDF, "min-docfreq", 0, "drop features in fewer than this many documents")
	freqCmd.Flags().Float64Var(&freqMaxProp, "max-docprop", 0, "drop features in more than this share of documents")
	freqCmd.Flags().StringVar(&freqWeight, "weight", "", "weighting scheme: count, prop or tfidf")
	freqCmd.Flags().StringVarP(&freqGroup, "group", "g", "", "sum counts by this document variable")
	freqCmd.Flags().BoolVar(&freqJSON, "json", false, "output as JSON")
}

func runFreq(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	opts := usecase.MatrixOptions{
		NGramMin:    freqNGrams,
		NGramMax:    freqNGrams,
		MinTermFreq: freqMinTF,
		MinDocFreq:  freqMinDF,
		MaxDocProp:  freqMaxProp,
		Weighting:   freqWeight,
	}
	if opts.MinTermFreq == 0 {
		opts.MinTermFreq = cfg.DFM.MinTermFreq
	}
	if opts.MinDocFreq == 0 {
		opts.MinDocFreq = cfg.DFM.MinDocFreq
	}
	if opts.MaxDocProp == 0 {
		opts.MaxDocProp = cfg.DFM.MaxDocProp
	}
	if opts.Weighting == "" {
		opts.Weighting = cfg.DFM.Weighting
	}

	analyzeUC := usecase.NewAnalyzeUseCase(st)
	m, err := analyzeUC.BuildMatrix(opts)
	if err != nil {
		return err
	}

	if freqGroup != "" {
		if m.Weighting() != dfm.WeightCount {
			return fmt.Errorf("grouping requires raw counts, not %s weights", m.Weighting())
		}
		m = m.GroupBy(freqGroup)
		if freqJSON {
			return printGroupedJSON(m, freqTop)
		}
		for i, id := range m.DocIDs() {
			fmt.Printf("%s:\n", id)
			sub := m.Rows([]int{i})
			for _, sf := range sub.TopFeatures(freqTop) {
				fmt.Printf("  %-24s %10.2f\n", sf.Feature, sf.Score)
			}
		}
		return nil
	}

	top := m.TopFeatures(freqTop)
	if freqJSON {
		output, _ := json.MarshalIndent(top, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Matrix: %d documents x %d features\n\n", m.NDocs(), m.NFeatures())
	fmt.Printf("%-24s %10s %8s\n", "feature", "frequency", "docfreq")
	df := m.DocFreq()
	for _, sf := range top {
		j, _ := m.FeatureIndex(sf.Feature)
		fmt.Printf("%-24s %10.2f %8d\n", sf.Feature, sf.Score, df[j])
	}
	return nil
}

func printGroupedJSON(m *dfm.DFM, top int) error {
	type group struct {
		Group   string  `json:"group"`
		Feature string  `json:"feature"`
		Score   float64 `json:"score"`
	}
	var out []group
	for i, id := range m.DocIDs() {
		sub := m.Rows([]int{i})
		for _, sf := range sub.TopFeatures(top) {
			out = append(out, group{Group: id, Feature: sf.Feature, Score: sf.Score})
		}
	}
	output, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(output))
	return nil
}
