package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"textkit/internal/topics"
	"textkit/internal/usecase"
)

var (
	topicsK     int
	topicsIters int
	topicsTerms int
	topicsSeed  uint64
	topicsJSON  bool
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Fit an LDA topic model",
	Long: `Fit a latent Dirichlet allocation topic model to the stored corpus
and print the top terms for each topic together with the documents
most associated with it.

Examples:
  textkit topics -k 10
  textkit topics -k 5 --iterations 200 --terms 15`,
	RunE: runTopics,
}

func init() {
	rootCmd.AddCommand(topicsCmd)
	topicsCmd.Flags().IntVarP(&topicsK, "topics", "k", 0, "number of topics (default from config)")
	topicsCmd.Flags().IntVar(&topicsIters, "iterations", 0, "sampling iterations (default from config)")
	topicsCmd.Flags().IntVar(&topicsTerms, "terms", 0, "top terms to show per topic (default from config)")
	topicsCmd.Flags().Uint64Var(&topicsSeed, "seed", 0, "random seed (default from config)")
	topicsCmd.Flags().BoolVar(&topicsJSON, "json", false, "output as JSON")
}

func runTopics(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	k := cfg.Topics.K
	if topicsK > 0 {
		k = topicsK
	}
	iters := cfg.Topics.Iterations
	if topicsIters > 0 {
		iters = topicsIters
	}
	nTerms := cfg.Topics.TopTerms
	if topicsTerms > 0 {
		nTerms = topicsTerms
	}
	seed := cfg.Topics.Seed
	if topicsSeed > 0 {
		seed = topicsSeed
	}

	analyzeUC := usecase.NewAnalyzeUseCase(st)
	m, err := analyzeUC.BuildMatrix(usecase.MatrixOptions{
		MinTermFreq: cfg.DFM.MinTermFreq,
		MinDocFreq:  cfg.DFM.MinDocFreq,
		MaxDocProp:  cfg.DFM.MaxDocProp,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Fitting %d topics over %d documents and %d features...\n\n", k, m.NDocs(), m.NFeatures())

	model, err := topics.Fit(m, topics.Options{
		K:          k,
		Iterations: iters,
		BurnIn:     cfg.Topics.BurnIn,
		Alpha:      cfg.Topics.Alpha,
		Eta:        cfg.Topics.Eta,
		Seed:       seed,
	})
	if err != nil {
		return fmt.Errorf("topic model failed: %w", err)
	}

	if topicsJSON {
		type topic struct {
			Topic int      `json:"topic"`
			Terms []string `json:"terms"`
		}
		out := make([]topic, k)
		for t := 0; t < k; t++ {
			terms, err := model.TopTerms(t, nTerms)
			if err != nil {
				return err
			}
			names := make([]string, len(terms))
			for i, sf := range terms {
				names[i] = sf.Feature
			}
			out[t] = topic{Topic: t + 1, Terms: names}
		}
		output, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	for t := 0; t < k; t++ {
		terms, err := model.TopTerms(t, nTerms)
		if err != nil {
			return err
		}
		names := make([]string, len(terms))
		for i, sf := range terms {
			names[i] = sf.Feature
		}
		fmt.Printf("Topic %d: %s\n", t+1, strings.Join(names, ", "))

		docs, err := model.TopDocs(t, 3)
		if err != nil {
			return err
		}
		for _, d := range docs {
			fmt.Printf("  %-24s %.3f\n", d.Feature, d.Score)
		}
		fmt.Println()
	}
	return nil
}
