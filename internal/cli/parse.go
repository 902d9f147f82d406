package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"textkit/internal/adapter/parser"
)

var (
	parseDoc      string
	parseEntities bool
	parseJSON     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [text]",
	Short: "Part-of-speech tag and parse text",
	Long: `Tokenize text into sentences, tag each token with its part of speech,
assign dependency heads and optionally extract named entities. The text
comes from the argument, from a stored document via --doc, or from
standard input.

Examples:
  textkit parse "The central bank raised interest rates."
  textkit parse --doc speech_2017.txt --entities
  cat article.txt | textkit parse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&parseDoc, "doc", "", "parse a stored document by ID")
	parseCmd.Flags().BoolVar(&parseEntities, "entities", false, "extract named entities")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output as JSON")
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := parseInput(args)
	if err != nil {
		return err
	}

	p := parser.New(parseEntities)
	sentences, err := p.Parse(text)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if parseJSON {
		output, _ := json.MarshalIndent(sentences, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	for i, s := range sentences {
		fmt.Printf("Sentence %d: %s\n", i+1, s.Text)
		fmt.Printf("  %-4s %-16s %-6s %-6s %-10s %s\n", "idx", "token", "tag", "head", "rel", "entity")
		for _, t := range s.Tokens {
			head := "root"
			if t.Head >= 0 {
				head = fmt.Sprintf("%d", t.Head)
			}
			fmt.Printf("  %-4d %-16s %-6s %-6s %-10s %s\n", t.Index, t.Text, t.Tag, head, t.Rel, t.Entity)
		}
		fmt.Println()
	}
	return nil
}

func parseInput(args []string) (string, error) {
	if parseDoc != "" {
		st, err := openStore()
		if err != nil {
			return "", err
		}
		defer st.Close()
		doc, err := st.GetDocument(parseDoc)
		if err != nil {
			return "", fmt.Errorf("failed to load document %s: %w", parseDoc, err)
		}
		return doc.Text, nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no text given")
	}
	return string(data), nil
}
