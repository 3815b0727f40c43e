// Package cli wires the cobra command for the sparsem binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsem/internal/calc"
	"github.com/katalvlaran/sparsem/internal/config"
)

// NewRoot creates the root cobra.Command:
//
//	sparsem <operation> <first-matrix> <second-matrix>
//
// The operation verb is matched case-insensitively against
// add/subtract/multiply; anything else is reported as an invalid
// operation. The result is written under the results directory from
// --results-dir, the config file, or the built-in default, and the
// output path is printed on success.
func NewRoot() *cobra.Command {
	var (
		cfgPath    string
		resultsDir string
	)

	root := &cobra.Command{
		Use:   "sparsem <operation> <first-matrix> <second-matrix>",
		Short: "Sparse integer matrix arithmetic on text-encoded operands",
		Long: `sparsem loads two sparse matrices from their text encoding, applies
one operation (add, subtract, multiply), and writes the result to
"{first}_{operation}_{second}_result.txt" in the results directory.`,
		Example: `  sparsem add inputs/a.txt inputs/b.txt
  sparsem MULTIPLY a.txt b.txt --results-dir out`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := calc.ParseOperation(args[0])
			if err != nil {
				return err
			}

			dir := resultsDir
			if dir == "" {
				cfg, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				dir = cfg.ResultsDir
			}

			outPath, err := calc.Run(op, args[1], args[2], dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Result saved to %s\n", outPath)

			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "sparsem.yaml", "path to the YAML config file")
	root.Flags().StringVar(&resultsDir, "results-dir", "", "directory for result files (overrides config)")

	return root
}
