package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nkeyid/internal/domain"
)

func mnemonicCmd() *cobra.Command {
	var sf seedFlags
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Print a seed as 24 BIP-39 words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := sf.text()
			if err != nil {
				return err
			}
			words, err := appCtx.IDs.Mnemonic(text)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), words)
			return nil
		},
	}
	sf.register(cmd)
	return cmd
}

// recover <kind> <words...>: the mnemonic holds entropy only, so the kind
// is given explicitly.
func recoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recover <kind> <words...>",
		Short: "Rebuild a seed from BIP-39 words",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			kp, err := appCtx.IDs.FromMnemonic(kind, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			defer kp.Dispose()

			seed, err := kp.Seed()
			if err != nil {
				return err
			}
			pub, err := kp.PublicKey()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seed: %s\n", seed)
			fmt.Fprintf(out, "Public Key: %s\n", pub)
			return nil
		},
	}
}
