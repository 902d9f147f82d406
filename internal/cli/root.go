package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"textkit/config"
	"textkit/internal/adapter/store"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "textkit",
	Short: "Corpus analysis toolkit - ingest, tokenize and analyze text collections",
	Long: `textkit ingests a collection of documents, tokenizes it into a stored
corpus, and runs quantitative text analysis over it: frequency tables,
keyword-in-context concordances, dictionary lookup, Naive Bayes
classification, LDA topic models, keyness statistics, document
similarity and part-of-speech parsing.

Example usage:
  textkit ingest ./speeches          # Tokenize and store a directory of texts
  textkit freq --top 20              # Most frequent features
  textkit kwic -p "econom*"          # Concordance for a pattern
  textkit topics -k 10               # Fit a topic model`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./textkit.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "working directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

// openStore opens the corpus database for the working directory. It
// fails when no corpus has been ingested yet.
func openStore() (*store.BoltStore, error) {
	dbPath := config.CorpusDBPath(rootDir)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("no corpus found. Run 'textkit ingest' first")
	}
	return store.NewBoltStore(dbPath)
}

func GetRootDir() string {
	return rootDir
}
