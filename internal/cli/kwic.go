package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"textkit/internal/kwic"
	"textkit/internal/usecase"
)

var (
	kwicPattern string
	kwicWindow  int
	kwicJSON    bool
)

var kwicCmd = &cobra.Command{
	Use:   "kwic",
	Short: "Keyword-in-context concordance",
	Long: `Locate a token pattern in the stored corpus and print each match with
its surrounding context window. Glob patterns match case-insensitively.

Examples:
  textkit kwic -p terror
  textkit kwic -p "econom*" -w 3`,
	RunE: runKWIC,
}

func init() {
	rootCmd.AddCommand(kwicCmd)
	kwicCmd.Flags().StringVarP(&kwicPattern, "pattern", "p", "", "token pattern to locate (required)")
	kwicCmd.Flags().IntVarP(&kwicWindow, "window", "w", 0, "context words on each side (default from config)")
	kwicCmd.Flags().BoolVar(&kwicJSON, "json", false, "output as JSON")
	kwicCmd.MarkFlagRequired("pattern")
}

func runKWIC(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	window := cfg.KWIC.Window
	if kwicWindow > 0 {
		window = kwicWindow
	}

	analyzeUC := usecase.NewAnalyzeUseCase(st)
	streams, _, err := analyzeUC.Streams()
	if err != nil {
		return err
	}

	matches, err := kwic.Locate(streams, kwicPattern, window)
	if err != nil {
		return fmt.Errorf("concordance failed: %w", err)
	}

	if kwicJSON {
		output, _ := json.MarshalIndent(matches, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(matches) == 0 {
		fmt.Printf("No matches for: %s\n", kwicPattern)
		return nil
	}
	fmt.Printf("Found %d matches for: %s\n\n", len(matches), kwicPattern)
	for _, m := range matches {
		fmt.Println(kwic.Format(m))
	}
	return nil
}
