package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nkeyid/internal/domain"
)

// EnvSeed supplies a seed when neither --seed nor --seed-file is given.
const EnvSeed = "NKEYID_SEED"

// seedFlags are shared by every command that needs a seed.
type seedFlags struct {
	seed string
	file string
}

func (f *seedFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.seed, "seed", "", "encoded seed")
	cmd.Flags().StringVar(&f.file, "seed-file", "", "file holding an encoded seed")
}

// text returns the seed from the flag, the file or the environment.
func (f *seedFlags) text() (string, error) {
	switch {
	case f.seed != "":
		return f.seed, nil
	case f.file != "":
		b, err := os.ReadFile(f.file)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	case os.Getenv(EnvSeed) != "":
		return strings.TrimSpace(os.Getenv(EnvSeed)), nil
	default:
		return "", fmt.Errorf("seed required (--seed, --seed-file or %s)", EnvSeed)
	}
}

// pair decodes the seed into a key pair. The caller disposes it.
func (f *seedFlags) pair() (domain.KeyPair, error) {
	text, err := f.text()
	if err != nil {
		return nil, err
	}
	kp, err := appCtx.IDs.FromSeedText(text)
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return kp, nil
}

// readData returns args[0] when present, the --in file when set, or stdin.
func readData(cmd *cobra.Command, args []string, inFile string) ([]byte, error) {
	switch {
	case len(args) > 0:
		return []byte(args[0]), nil
	case inFile == "-" || inFile == "":
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		if len(b) == 0 {
			return nil, errors.New("data required (argument, --in or stdin)")
		}
		return b, nil
	default:
		return os.ReadFile(inFile)
	}
}
