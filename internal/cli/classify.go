package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"textkit/internal/classify"
	"textkit/internal/dfm"
	"textkit/internal/usecase"
)

var (
	classifyLabelVar string
	classifyRatio    float64
	classifySeed     int64
	classifyJSON     bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Train and evaluate a Naive Bayes classifier",
	Long: `Split the stored corpus into training and test partitions, fit a
multinomial Naive Bayes classifier on the training documents using a
document variable as the class label, and report held-out accuracy
with a confusion matrix.

Examples:
  textkit classify --label sentiment
  textkit classify --label party --ratio 0.7 --seed 99`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVarP(&classifyLabelVar, "label", "l", "", "document variable holding the class label (default from config)")
	classifyCmd.Flags().Float64Var(&classifyRatio, "ratio", 0, "training fraction (default from config)")
	classifyCmd.Flags().Int64Var(&classifySeed, "seed", 0, "random seed for the split (default from config)")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "output as JSON")
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	labelVar := cfg.Classify.LabelVar
	if classifyLabelVar != "" {
		labelVar = classifyLabelVar
	}
	ratio := cfg.Classify.TrainRatio
	if classifyRatio > 0 {
		ratio = classifyRatio
	}
	seed := cfg.Classify.Seed
	if classifySeed != 0 {
		seed = classifySeed
	}

	analyzeUC := usecase.NewAnalyzeUseCase(st)
	m, err := analyzeUC.BuildMatrix(usecase.MatrixOptions{})
	if err != nil {
		return err
	}

	train, test, trainIdx, testIdx, err := classify.Split(m, ratio, seed)
	if err != nil {
		return fmt.Errorf("failed to split corpus: %w", err)
	}

	trainLabels := labelsFor(m, trainIdx, labelVar)
	testLabels := labelsFor(m, testIdx, labelVar)

	nb := classify.NewNaiveBayes(cfg.Classify.Smoothing, cfg.Classify.Prior)
	if err := nb.Fit(train, trainLabels); err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	predicted, err := nb.Predict(test)
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}

	eval, err := classify.Evaluate(predicted, testLabels)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if classifyJSON {
		output, _ := json.MarshalIndent(eval, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Trained on %d documents, tested on %d (label: %s)\n\n", train.NDocs(), test.NDocs(), labelVar)
	fmt.Printf("Accuracy: %.3f\n\n", eval.Accuracy)

	fmt.Printf("%-12s %9s %9s\n", "class", "precision", "recall")
	for _, c := range eval.Classes {
		fmt.Printf("%-12s %9.3f %9.3f\n", c, eval.Precision[c], eval.Recall[c])
	}

	fmt.Printf("\nConfusion matrix (rows: actual, columns: predicted):\n")
	fmt.Printf("%-12s", "")
	for _, c := range eval.Classes {
		fmt.Printf(" %10s", c)
	}
	fmt.Println()
	for _, actual := range eval.Classes {
		fmt.Printf("%-12s", actual)
		for _, pred := range eval.Classes {
			fmt.Printf(" %10d", eval.Confusion[actual][pred])
		}
		fmt.Println()
	}
	return nil
}

func labelsFor(m *dfm.DFM, idx []int, labelVar string) []string {
	labels := make([]string, len(idx))
	for i, row := range idx {
		labels[i] = m.Var(row, labelVar)
	}
	return labels
}
