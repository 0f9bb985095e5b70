// Command prcheck checks a hinted PR/RUP proof against a DIMACS CNF
// formula, per spec §6: two positional arguments, no flags, a fixed
// stdout protocol, and fixed exit codes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xDarkicex/prcheck/core"
	"github.com/xDarkicex/prcheck/verify"
)

const (
	exitVerified       = 1
	exitNotVerified    = 0
	exitStructural     = 2
	exitInputMalformed = 255
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prcheck <formula.cnf> <proof.lpr>",
		Short: "prcheck verifies a hinted PR/RUP proof against a CNF formula",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func run(cnfPath, proofPath string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	driver := verify.NewDriver(logger, afero.NewOsFs())
	result, err := driver.Run(cnfPath, proofPath)
	if err != nil {
		return err
	}

	verify.PrintVerdict(result)
	if result.Verdict == core.VerdictVerified {
		os.Exit(exitVerified)
	}
	os.Exit(exitNotVerified)
	return nil
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		ve, ok := core.AsVerifierError(err)
		if !ok {
			fmt.Fprintln(os.Stdout, "c ERROR:", err)
			os.Exit(exitInputMalformed)
		}
		switch ve.Kind {
		case core.KindStructural:
			// verify.Driver.runProof already wrote the "c ERROR: ..." line
			// for a structural failure before propagating it here.
			os.Exit(exitStructural)
		default:
			fmt.Fprintln(os.Stdout, "c ERROR:", ve.Message)
			os.Exit(exitInputMalformed)
		}
	}
}
