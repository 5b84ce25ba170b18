// Command byron-validate is ambient CLI tooling around the txvalidate
// library: it is not part of the core (the core has no CLI dependency at
// all, per its external-interfaces design), in the same relationship the
// teacher's cmd/rubin-node has to consensus/.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cardanogo/byronvalidate/config"
	"github.com/cardanogo/byronvalidate/crypto"
	"github.com/cardanogo/byronvalidate/internal/logging"
	"github.com/cardanogo/byronvalidate/txvalidate"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "byron-validate",
		Short: "Phase-1 validation for Byron-era transactions",
	}
	root.AddCommand(newValidateCmd())
	root.AddCommand(newConformCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <fixture.json>",
		Short: "Validate a single transaction fixture and print its verdict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			sugar := logger.Sugar()
			defer func() { _ = logger.Sync() }()

			result, err := runFixture(args[0])
			if err != nil {
				return err
			}
			if result.verdict == nil {
				sugar.Infow("validation succeeded", "fixture", args[0])
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}
			sugar.Infow("validation rejected", "fixture", args[0], "verdict", result.verdict.Kind.String())
			fmt.Fprintln(cmd.OutOrStdout(), result.verdict.Kind.String())
			return nil
		},
	}
}

func newConformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conform <dir>",
		Short: "Run every *.json fixture in dir and report pass/fail against expected_verdict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := os.ReadDir(args[0])
			if err != nil {
				return fmt.Errorf("conform: read dir: %w", err)
			}
			var failures int
			for _, e := range entries {
				if e.IsDir() || !isJSONFile(e.Name()) {
					continue
				}
				path := args[0] + string(os.PathSeparator) + e.Name()
				result, err := runFixture(path)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: %v\n", e.Name(), err)
					failures++
					continue
				}
				got := "success"
				if result.verdict != nil {
					got = result.verdict.Kind.String()
				}
				if got != result.expected {
					fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: expected %s, got %s\n", e.Name(), result.expected, got)
					failures++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "PASS %s\n", e.Name())
			}
			if failures > 0 {
				return fmt.Errorf("conform: %d fixture(s) failed", failures)
			}
			return nil
		},
	}
}

func isJSONFile(name string) bool {
	return len(name) > 5 && name[len(name)-5:] == ".json"
}

type fixtureResult struct {
	verdict  *txvalidate.Verdict
	expected string
}

// runFixture loads a fixture, auto-attaches a witness that trivially
// covers every resolved input's signatory (conformance fixtures in this
// corpus predate witness checking and don't carry real signatures), and
// runs the rule engine.
func runFixture(path string) (*fixtureResult, error) {
	f, err := loadFixture(path)
	if err != nil {
		return nil, err
	}
	body, err := f.body()
	if err != nil {
		return nil, err
	}
	utxos, err := f.utxoView()
	if err != nil {
		return nil, err
	}

	witnesses := make(txvalidate.WitnessSet, 0, len(body.Inputs))
	for _, in := range body.Inputs {
		point, ok := txvalidate.Normalize(in)
		if !ok {
			continue
		}
		if out, found := utxos.Lookup(point); found {
			witnesses = append(witnesses, txvalidate.ScriptWitness{Signatory: out.Address.Payload})
		}
	}

	tx := txvalidate.ByronTx{Body: body, Witnesses: witnesses}
	err = txvalidate.Validate(tx, utxos, fixedSizeCodec{size: f.EncodedSize}, crypto.Native{}, f.params())
	if err == nil {
		return &fixtureResult{expected: f.ExpectedVerdict}, nil
	}
	v, ok := txvalidate.AsVerdict(err)
	if !ok {
		return nil, err
	}
	return &fixtureResult{verdict: v, expected: f.ExpectedVerdict}, nil
}
