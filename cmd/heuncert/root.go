// cmd/heuncert/root.go
package heuncert

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base Cobra command for the heuncert application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "heuncert",
	Short: "Empirical uncertainty estimation for single-grain (U-Th)/He ages",
	Long: `heuncert widens the reported analytical error of each dated grain by
the kernel-weighted scatter of ages among grains with similar effective
uranium (eU), combined in quadrature.`,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
}
