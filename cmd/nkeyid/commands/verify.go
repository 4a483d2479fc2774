package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nkeyid/internal/crypto"
)

// verify --pub <key> --sig <base64> [data]
func verifyCmd() *cobra.Command {
	var pubText, sigText, inFile string

	cmd := &cobra.Command{
		Use:   "verify [data]",
		Short: "Verify a base64 signature against a public key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := crypto.DecodeB64(sigText)
			if err != nil {
				return fmt.Errorf("decode signature: %w", err)
			}
			data, err := readData(cmd, args, inFile)
			if err != nil {
				return err
			}
			kp, err := appCtx.IDs.FromPublicText(pubText)
			if err != nil {
				return fmt.Errorf("invalid public key: %w", err)
			}
			defer kp.Dispose()

			if err := kp.Verify(data, sig); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signature Verified")
			return nil
		},
	}
	cmd.Flags().StringVar(&pubText, "pub", "", "encoded public key")
	cmd.Flags().StringVar(&sigText, "sig", "", "base64 signature")
	cmd.Flags().StringVar(&inFile, "in", "", "read data from file (- for stdin)")
	_ = cmd.MarkFlagRequired("pub")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}
