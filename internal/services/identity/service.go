package identity

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tyler-smith/go-bip39"

	"nkeyid/internal/codec"
	"nkeyid/internal/domain"
	"nkeyid/internal/keypair"
	"nkeyid/internal/util/memzero"
)

// Service builds key pairs. It holds no key material itself.
type Service struct {
	rand io.Reader
	log  logrus.FieldLogger
}

// Option configures a Service.
type Option func(*Service)

// WithRand sets the source seeds and nonces are read from.
func WithRand(r io.Reader) Option { return func(s *Service) { s.rand = r } }

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option { return func(s *Service) { s.log = l } }

// New returns an identity service reading randomness from crypto/rand
// unless overridden.
func New(opts ...Option) *Service {
	s := &Service{rand: rand.Reader}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}
	return s
}

// Generate creates a pair of kind from a fresh random seed.
func (s *Service) Generate(kind domain.Kind) (domain.KeyPair, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidKind, kind)
	}
	var seed domain.Seed
	defer memzero.Zero(seed[:])
	if _, err := io.ReadFull(s.rand, seed[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	kp, err := s.fromSeed(kind, seed[:])
	if err != nil {
		return nil, err
	}
	s.log.WithField("kind", kind.String()).Debug("generated key pair")
	return kp, nil
}

// FromSeedText rebuilds a full pair from an encoded seed.
func (s *Service) FromSeedText(text string) (domain.KeyPair, error) {
	kind, raw, err := codec.Decode(text, domain.MaterialSeed)
	if err != nil {
		s.rejected(domain.MaterialSeed, err)
		return nil, err
	}
	defer memzero.Zero(raw)
	return s.fromSeed(kind, raw)
}

// FromPublicText builds a verify-only pair from an encoded public key.
func (s *Service) FromPublicText(text string) (domain.KeyPair, error) {
	kind, raw, err := codec.Decode(text, domain.MaterialPublic)
	if err != nil {
		s.rejected(domain.MaterialPublic, err)
		return nil, err
	}
	kp, err := keypair.NewPublic(kind, raw)
	if err != nil {
		return nil, err
	}
	return kp, nil
}

// FromRawSeed builds a full pair of kind from 32 raw seed bytes.
func (s *Service) FromRawSeed(kind domain.Kind, seed []byte) (domain.KeyPair, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidKind, kind)
	}
	return s.fromSeed(kind, seed)
}

// Inspect validates text and reports the material and kind it carries.
func (s *Service) Inspect(text string) (domain.Material, domain.Kind, error) {
	material, kind, payload, err := codec.DecodeAny(text)
	if err != nil {
		return 0, domain.KindUnknown, err
	}
	memzero.Zero(payload)
	return material, kind, nil
}

// Mnemonic renders the entropy of an encoded seed as 24 BIP-39 words.
// The kind is not part of the words.
func (s *Service) Mnemonic(seedText string) (string, error) {
	_, raw, err := codec.Decode(seedText, domain.MaterialSeed)
	if err != nil {
		s.rejected(domain.MaterialSeed, err)
		return "", err
	}
	defer memzero.Zero(raw)
	return bip39.NewMnemonic(raw)
}

// FromMnemonic recovers a pair of kind from words produced by Mnemonic.
func (s *Service) FromMnemonic(kind domain.Kind, words string) (domain.KeyPair, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidKind, kind)
	}
	normalized := strings.Join(strings.Fields(strings.ToLower(words)), " ")
	entropy, err := bip39.EntropyFromMnemonic(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMnemonic, err)
	}
	defer memzero.Zero(entropy)
	if len(entropy) != len(domain.Seed{}) {
		return nil, fmt.Errorf("%w: want 24 words, got %d", domain.ErrInvalidMnemonic, len(strings.Fields(normalized)))
	}
	return s.fromSeed(kind, entropy)
}

func (s *Service) fromSeed(kind domain.Kind, seed []byte) (domain.KeyPair, error) {
	if len(seed) != len(domain.Seed{}) {
		return nil, fmt.Errorf("%w: got %d bytes", domain.ErrInvalidSeedLength, len(seed))
	}
	if kind == domain.KindCurve {
		kp, err := keypair.NewCurve(seed, s.rand)
		if err != nil {
			return nil, err
		}
		return kp, nil
	}
	kp, err := keypair.NewFull(kind, seed)
	if err != nil {
		return nil, err
	}
	return kp, nil
}

func (s *Service) rejected(material domain.Material, err error) {
	s.log.WithFields(logrus.Fields{
		"material": material.String(),
		"error":    err.Error(),
	}).Debug("identity text rejected")
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
