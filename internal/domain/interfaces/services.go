package interfaces

import domaintypes "nkeyid/internal/domain/types"

// IdentityService creates key pairs and rebuilds them from their text forms.
type IdentityService interface {
	Generate(kind domaintypes.Kind) (KeyPair, error)
	FromSeedText(text string) (KeyPair, error)
	FromPublicText(text string) (KeyPair, error)
	FromRawSeed(kind domaintypes.Kind, seed []byte) (KeyPair, error)

	// Inspect validates text of any material and reports what it holds.
	Inspect(text string) (domaintypes.Material, domaintypes.Kind, error)

	// Mnemonic renders an encoded seed as BIP-39 words; FromMnemonic
	// reverses it for the given kind.
	Mnemonic(seedText string) (string, error)
	FromMnemonic(kind domaintypes.Kind, words string) (KeyPair, error)
}

// RoundTripService signs a message and checks it against the re-imported
// public key, as a consumer on the other end would.
type RoundTripService interface {
	Run(kp KeyPair, data []byte) (domaintypes.Report, error)
}
