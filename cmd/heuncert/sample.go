// cmd/heuncert/sample.go
package heuncert

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/uyouii/heuncert/dataset"
)

// sampleCmd implements 'sample', which prints the built-in grain table
// in the input CSV layout as a quick-start template.
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the built-in sample grain table as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return dataset.WriteGrainCSV(os.Stdout, dataset.SampleGrains())
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
