package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"textkit/config"
	"textkit/internal/adapter/analyzer"
	"textkit/internal/adapter/cleaner"
	"textkit/internal/adapter/loader"
	"textkit/internal/adapter/segmenter"
	"textkit/internal/adapter/store"
	"textkit/internal/domain"
	"textkit/internal/port"
	"textkit/internal/usecase"
)

var ingestReshape string

var ingestCmd = &cobra.Command{
	Use:   "ingest [path|url]",
	Short: "Load, tokenize and store a corpus",
	Long: `Load documents from a directory, a CSV/TSV file or a URL, clean and
tokenize them according to the configuration, and store the resulting
corpus in .textkit/corpus.db within the working directory.

Examples:
  textkit ingest ./speeches                   # Directory of text files
  textkit ingest data/tweets.csv              # CSV with a text column
  textkit ingest https://example.org/corpus.csv
  textkit ingest ./speeches --reshape sentences`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringVar(&ingestReshape, "reshape", "", "split documents before tokenizing: sentences or paragraphs")
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	source := GetRootDir()
	if len(args) > 0 {
		source = args[0]
	}

	corpus, err := loadCorpus(source, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d documents from %s\n", len(corpus.Docs), source)

	if err := config.EnsureDataDir(GetRootDir()); err != nil {
		return fmt.Errorf("failed to create .textkit directory: %w", err)
	}

	dbPath := config.CorpusDBPath(GetRootDir())
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer st.Close()

	migration, err := st.CheckMigration(cfg)
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}
	if migration.NeedsRebuild {
		fmt.Printf("Rebuilding corpus: %s\n", migration.Reason)
	}

	cl, err := cleaner.New(cfg.Clean.StripHTML, cleanPatterns(cfg))
	if err != nil {
		return fmt.Errorf("invalid cleaning pattern: %w", err)
	}

	tok := analyzer.NewTokenizer(analyzer.Options{
		Lowercase:     cfg.Tokens.Lowercase,
		RemovePunct:   cfg.Tokens.RemovePunct,
		RemoveNumbers: cfg.Tokens.RemoveNumbers,
		RemoveStops:   cfg.Tokens.RemoveStops,
		Stemming:      cfg.Tokens.Stemming,
		MinChars:      cfg.Tokens.MinChars,
		ExtraStops:    cfg.Tokens.ExtraStopwords,
	})

	var seg port.Segmenter
	switch ingestReshape {
	case "":
	case "sentences":
		seg = segmenter.New(segmenter.Sentences)
	case "paragraphs":
		seg = segmenter.New(segmenter.Paragraphs)
	default:
		return fmt.Errorf("unknown reshape unit: %s (want sentences or paragraphs)", ingestReshape)
	}

	ingestUC := usecase.NewIngestUseCase(st, cl, tok, seg)

	bar := progressbar.NewOptions(len(corpus.Docs),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Ingesting[reset]"),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	result, err := ingestUC.Ingest(corpus, func() {
		bar.Add(1)
	})
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	if err := st.MarkCurrent(cfg); err != nil {
		return fmt.Errorf("failed to record schema info: %w", err)
	}

	stats, docs, err := ingestUC.Summary()
	if err != nil {
		return err
	}

	if cfg.Logging.Level == "debug" {
		for _, d := range docs {
			tokens, err := st.GetTokens(d.ID)
			if err != nil {
				return err
			}
			fmt.Printf("  %-32s %6d tokens\n", d.ID, len(tokens))
		}
	}

	fmt.Printf("\nIngest complete:\n")
	fmt.Printf("  Documents stored: %d\n", result.DocsStored)
	if result.DocsSkipped > 0 {
		fmt.Printf("  Documents skipped: %d (empty after processing)\n", result.DocsSkipped)
	}
	fmt.Printf("  Total tokens:     %d\n", stats.TotalTokens)
	fmt.Printf("  Vocabulary size:  %d\n", stats.VocabSize)
	fmt.Printf("  Avg doc length:   %.1f tokens\n", stats.AvgDocLen)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\nCorpus stored at: %s\n", dbPath)
	return nil
}

// loadCorpus picks a loader for the source: URLs are fetched, CSV/TSV
// files are parsed column-wise, anything else is walked as a directory
// of text files.
func loadCorpus(source string, cfg *config.Config) (domain.Corpus, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		corpus, err := loader.Fetch(source, cfg.Corpus.TextField, cfg.Corpus.IDField)
		if err != nil {
			return domain.Corpus{}, fmt.Errorf("failed to fetch %s: %w", source, err)
		}
		return corpus, nil
	}

	info, err := os.Stat(source)
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("source does not exist: %w", err)
	}

	if !info.IsDir() {
		ext := strings.ToLower(filepath.Ext(source))
		if ext != ".csv" && ext != ".tsv" {
			return domain.Corpus{}, fmt.Errorf("unsupported file type %q, want .csv or .tsv", ext)
		}
		comma := ','
		if ext == ".tsv" {
			comma = '\t'
		}
		f, err := os.Open(source)
		if err != nil {
			return domain.Corpus{}, fmt.Errorf("failed to open %s: %w", source, err)
		}
		defer f.Close()
		l := loader.NewCSVLoader(cfg.Corpus.TextField, cfg.Corpus.IDField, comma)
		corpus, err := l.Load(f, source)
		if err != nil {
			return domain.Corpus{}, fmt.Errorf("failed to parse %s: %w", source, err)
		}
		return corpus, nil
	}

	w := loader.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
	corpus, err := w.Load(source)
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("failed to walk %s: %w", source, err)
	}
	return corpus, nil
}

func cleanPatterns(cfg *config.Config) [][2]string {
	if len(cfg.Clean.Patterns) == 0 {
		return nil
	}
	patterns := make([][2]string, len(cfg.Clean.Patterns))
	for i, p := range cfg.Clean.Patterns {
		patterns[i] = [2]string{p.Pattern, p.Replace}
	}
	return patterns
}
