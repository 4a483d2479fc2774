package keypair

import "nkeyid/internal/domain"

// Compile-time assertions that the pairs implement the domain contracts.
var (
	_ domain.KeyPair      = (*Full)(nil)
	_ domain.KeyPair      = (*Public)(nil)
	_ domain.CurveKeyPair = (*Curve)(nil)
)
