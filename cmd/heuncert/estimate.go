// cmd/heuncert/estimate.go
package heuncert

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uyouii/heuncert/dataset"
	"github.com/uyouii/heuncert/empirical"
	"github.com/uyouii/heuncert/model"
	"github.com/uyouii/heuncert/utils"
	"go.uber.org/zap"
)

// estimateCmd implements 'estimate', which reads a grain table,
// runs the empirical uncertainty estimator and writes the table back
// out with the widened errors appended.
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate empirical age uncertainties from eU-local scatter",
	Long: `The 'estimate' subcommand reads single-grain ages from a CSV file
(or the built-in sample table when no input is given), computes one
empirical 1-sigma per grain and writes the result CSV to the output
path or stdout.`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().String("input", "", "input CSV path, empty for the built-in sample table")
	estimateCmd.Flags().String("output", "", "output CSV path, empty for stdout")
	estimateCmd.Flags().String("sample-name", "", "sample name attached to every log line")
	estimateCmd.Flags().Float64("bandwidth", empirical.DefaultBandwidthEU, "gaussian kernel bandwidth in eU units (ppm)")
	estimateCmd.Flags().Int("max-grains", empirical.DefaultMaxGrainCount, "reject datasets larger than this")
	estimateCmd.Flags().Int("parallelism", 0, "estimation workers, 0 for one per CPU")
	estimateCmd.Flags().Bool("strict-finite", false, "reject non-finite inputs instead of excluding them")

	viper.BindPFlag("input", estimateCmd.Flags().Lookup("input"))
	viper.BindPFlag("output", estimateCmd.Flags().Lookup("output"))
	viper.BindPFlag("sample-name", estimateCmd.Flags().Lookup("sample-name"))
	viper.BindPFlag("bandwidth", estimateCmd.Flags().Lookup("bandwidth"))
	viper.BindPFlag("max-grains", estimateCmd.Flags().Lookup("max-grains"))
	viper.BindPFlag("parallelism", estimateCmd.Flags().Lookup("parallelism"))
	viper.BindPFlag("strict-finite", estimateCmd.Flags().Lookup("strict-finite"))

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	grainSet, err := loadGrains(viper.GetString("input"), viper.GetString("sample-name"))
	if err != nil {
		return err
	}

	ctx := utils.WithSample(context.Background(), grainSet.SampleName)
	logger := utils.GetLogger(ctx)

	summary, err := dataset.Summarize(grainSet)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded", zap.Any("summary", summary))

	config := &empirical.Config{
		BandwidthEU:   viper.GetFloat64("bandwidth"),
		MaxGrainCount: viper.GetInt("max-grains"),
		Parallelism:   viper.GetInt("parallelism"),
		StrictFinite:  viper.GetBool("strict-finite"),
	}

	results, err := empirical.CalculateEmpiricalErrors(ctx, grainSet, config)
	if err != nil {
		return err
	}

	return writeResults(viper.GetString("output"), results)
}

func loadGrains(inputPath, sampleName string) (*model.GrainSet, error) {
	if inputPath == "" {
		grainSet := dataset.SampleGrains()
		if sampleName != "" {
			grainSet.SampleName = sampleName
		}
		return grainSet, nil
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	if sampleName == "" {
		sampleName = inputPath
	}
	return dataset.ReadGrainCSV(f, sampleName)
}

func writeResults(outputPath string, results []model.EmpiricalResult) error {
	if outputPath == "" {
		return dataset.WriteResultCSV(os.Stdout, results)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	return dataset.WriteResultCSV(f, results)
}
