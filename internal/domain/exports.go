package domain

import (
	interfaces "nkeyid/internal/domain/interfaces"
	types "nkeyid/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Kind           = types.Kind
	Material       = types.Material
	Seed           = types.Seed
	Ed25519Public  = types.Ed25519Public
	Ed25519Private = types.Ed25519Private
	X25519Public   = types.X25519Public
	X25519Private  = types.X25519Private
	Report         = types.Report
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyPair          = interfaces.KeyPair
	CurveKeyPair     = interfaces.CurveKeyPair
	IdentityService  = interfaces.IdentityService
	RoundTripService = interfaces.RoundTripService
)

const (
	KindUnknown  = types.KindUnknown
	KindOperator = types.KindOperator
	KindAccount  = types.KindAccount
	KindUser     = types.KindUser
	KindServer   = types.KindServer
	KindCluster  = types.KindCluster
	KindCurve    = types.KindCurve

	MaterialSeed    = types.MaterialSeed
	MaterialPublic  = types.MaterialPublic
	MaterialPrivate = types.MaterialPrivate
)

// Errors re-exported from the types subpackage; errors.Is matches either name.
var (
	ErrMalformedText         = types.ErrMalformedText
	ErrChecksumMismatch      = types.ErrChecksumMismatch
	ErrKindMismatch          = types.ErrKindMismatch
	ErrUnknownPrefix         = types.ErrUnknownPrefix
	ErrNoPrivateKey          = types.ErrNoPrivateKey
	ErrNoPrivateMaterial     = types.ErrNoPrivateMaterial
	ErrDisposed              = types.ErrDisposed
	ErrInvalidSignature      = types.ErrInvalidSignature
	ErrInvalidKind           = types.ErrInvalidKind
	ErrInvalidSeedLength     = types.ErrInvalidSeedLength
	ErrInvalidKeyLength      = types.ErrInvalidKeyLength
	ErrInvalidMnemonic       = types.ErrInvalidMnemonic
	ErrCurveKeyOperation     = types.ErrCurveKeyOperation
	ErrInvalidEncryptVersion = types.ErrInvalidEncryptVersion
	ErrInvalidEncrypted      = types.ErrInvalidEncrypted
)

// ParseKind accepts a kind name or its leading letter.
func ParseKind(s string) (Kind, error) { return types.ParseKind(s) }

// Kinds lists every valid kind.
func Kinds() []Kind { return types.Kinds() }
