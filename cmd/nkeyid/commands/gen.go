package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nkeyid/internal/domain"
)

func genCmd() *cobra.Command {
	var withPrivate, withMnemonic bool

	cmd := &cobra.Command{
		Use:   "gen [kind]",
		Short: "Generate a key pair (operator, account, user, server, cluster, curve)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := appCtx.Config.DefaultKind()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if kind, err = domain.ParseKind(args[0]); err != nil {
					return err
				}
			}

			kp, err := appCtx.IDs.Generate(kind)
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
			fmt.Fprintf(out, "Kind: %s\n", kind)
			fmt.Fprintf(out, "Seed: %s\n", seed)
			fmt.Fprintf(out, "Public Key: %s\n", pub)
			if withPrivate {
				priv, err := kp.PrivateKey()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Private Key: %s\n", priv)
			}
			if withMnemonic {
				words, err := appCtx.IDs.Mnemonic(seed)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Mnemonic: %s\n", words)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withPrivate, "private", false, "also print the encoded private key")
	cmd.Flags().BoolVar(&withMnemonic, "mnemonic", false, "also print the seed as BIP-39 words")
	return cmd
}
