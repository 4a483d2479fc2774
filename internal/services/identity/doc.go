// Package identity creates key pairs and rebuilds them from text.
//
// Generation draws seeds from an injected io.Reader (crypto/rand by
// default). Text input is validated by internal/codec before any key is
// derived. Seeds can also be exported as 24 BIP-39 words and recovered
// from them.
package identity
