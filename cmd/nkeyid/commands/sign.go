package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nkeyid/internal/crypto"
)

// sign [data]: print the base64 signature of data under --seed.
func signCmd() *cobra.Command {
	var (
		sf     seedFlags
		inFile string
	)
	cmd := &cobra.Command{
		Use:   "sign [data]",
		Short: "Sign data with a seed and print the base64 signature",
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

			sig, err := kp.Sign(data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.B64(sig))
			return nil
		},
	}
	sf.register(cmd)
	cmd.Flags().StringVar(&inFile, "in", "", "read data from file (- for stdin)")
	return cmd
}
