package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nkeyid/internal/crypto"
	"nkeyid/internal/domain"
)

// curvePair loads the seed and requires it to be a curve key.
func curvePair(sf *seedFlags) (domain.CurveKeyPair, error) {
	kp, err := sf.pair()
	if err != nil {
		return nil, err
	}
	ckp, ok := kp.(domain.CurveKeyPair)
	if !ok {
		kp.Dispose()
		return nil, fmt.Errorf("%w: seed is a %s key", domain.ErrKindMismatch, kp.Kind())
	}
	return ckp, nil
}

func sealCmd() *cobra.Command {
	var (
		sf     seedFlags
		to     string
		inFile string
	)
	cmd := &cobra.Command{
		Use:   "seal [data]",
		Short: "Encrypt data for a curve public key and print it as base64",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readData(cmd, args, inFile)
			if err != nil {
				return err
			}
			kp, err := curvePair(&sf)
			if err != nil {
				return err
			}
			defer kp.Dispose()

			sealed, err := kp.Seal(data, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.B64(sealed))
			return nil
		},
	}
	sf.register(cmd)
	cmd.Flags().StringVar(&to, "to", "", "recipient curve public key")
	cmd.Flags().StringVar(&inFile, "in", "", "read data from file (- for stdin)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func openCmd() *cobra.Command {
	var (
		sf   seedFlags
		from string
	)
	cmd := &cobra.Command{
		Use:   "open <base64>",
		Short: "Decrypt a sealed message from a curve public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sealed, err := crypto.DecodeB64(args[0])
			if err != nil {
				return fmt.Errorf("decode sealed message: %w", err)
			}
			kp, err := curvePair(&sf)
			if err != nil {
				return err
			}
			defer kp.Dispose()

			plain, err := kp.Open(sealed, from)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", plain)
			return nil
		},
	}
	sf.register(cmd)
	cmd.Flags().StringVar(&from, "from", "", "sender curve public key")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
