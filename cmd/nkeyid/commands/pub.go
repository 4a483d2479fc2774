package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pubCmd() *cobra.Command {
	var sf seedFlags
	cmd := &cobra.Command{
		Use:   "pub",
		Short: "Print the public key for a seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := sf.pair()
			if err != nil {
				return err
			}
			defer kp.Dispose()

			pub, err := kp.PublicKey()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pub)
			return nil
		},
	}
	sf.register(cmd)
	return cmd
}
