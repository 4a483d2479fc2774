package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nkeyid/internal/crypto"
)

// roundtrip [data]: sign, rebuild the pair from its public key and verify,
// printing one line per stage.
func roundTripCmd() *cobra.Command {
	var (
		sf     seedFlags
		inFile string
	)
	cmd := &cobra.Command{
		Use:   "roundtrip [data]",
		Short: "Sign data, re-import the public key and verify the signature",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readData(cmd, args, inFile)
			if err != nil {
				return err
			}
			kp, err := sf.pair()
			if err != nil {
				return err
			}
			defer kp.Dispose()

			out := cmd.OutOrStdout()
			report, err := appCtx.RoundTrip.Run(kp, data)
			if err != nil {
				fmt.Fprintf(out, "[ERR] %v\n", err)
				return err
			}
			fmt.Fprintf(out, "[OK] Data: %s\n", report.Data)
			fmt.Fprintf(out, "[OK] Signature: %s\n", crypto.B64(report.Signature))
			fmt.Fprintf(out, "[OK] Public Key: %s\n", report.PublicKey)
			fmt.Fprintln(out, "[OK] Signature Verified")
			fmt.Fprintf(out, "[OK] Elapsed: %s\n", report.Elapsed)
			return nil
		},
	}
	sf.register(cmd)
	cmd.Flags().StringVar(&inFile, "in", "", "read data from file (- for stdin)")
	return cmd
}
