package types

import "time"

// Report records one sign, re-import and verify pass over a message.
type Report struct {
	Data      []byte
	Signature []byte
	PublicKey string
	Elapsed   time.Duration
}
