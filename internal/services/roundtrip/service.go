package roundtrip

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"nkeyid/internal/domain"
)

// Service runs sign and verify round trips.
type Service struct {
	ids domain.IdentityService
	log logrus.FieldLogger
	now func() time.Time
}

// New returns a round-trip service that re-imports public keys through ids.
func New(ids domain.IdentityService, log logrus.FieldLogger) *Service {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Service{ids: ids, log: log, now: time.Now}
}

// Run signs data with kp and verifies the signature against a pair built
// from kp's public key text. kp is not disposed.
func (s *Service) Run(kp domain.KeyPair, data []byte) (domain.Report, error) {
	start := s.now()

	sig, err := kp.Sign(data)
	if err != nil {
		return domain.Report{}, fmt.Errorf("sign: %w", err)
	}
	pubText, err := kp.PublicKey()
	if err != nil {
		return domain.Report{}, fmt.Errorf("public key: %w", err)
	}
	pub, err := s.ids.FromPublicText(pubText)
	if err != nil {
		return domain.Report{}, fmt.Errorf("public key: %w", err)
	}
	defer pub.Dispose()

	if err := pub.Verify(data, sig); err != nil {
		return domain.Report{}, fmt.Errorf("verify: %w", err)
	}

	report := domain.Report{
		Data:      data,
		Signature: sig,
		PublicKey: pubText,
		Elapsed:   s.now().Sub(start),
	}
	s.log.WithFields(logrus.Fields{
		"kind":    kp.Kind().String(),
		"bytes":   len(data),
		"elapsed": report.Elapsed,
	}).Debug("round trip verified")
	return report, nil
}

// Compile-time assertion that Service implements domain.RoundTripService.
var _ domain.RoundTripService = (*Service)(nil)
