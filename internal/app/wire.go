package app

import (
	"nkeyid/internal/services/identity"
	"nkeyid/internal/services/roundtrip"
)

// New constructs the dependency graph from cfg.
func New(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := NewLogger(cfg.LogLevel, cfg.LogOut)
	if err != nil {
		return nil, err
	}

	opts := []identity.Option{identity.WithLogger(log)}
	if cfg.Rand != nil {
		opts = append(opts, identity.WithRand(cfg.Rand))
	}
	ids := identity.New(opts...)

	return &App{
		Config:    cfg,
		Log:       log,
		IDs:       ids,
		RoundTrip: roundtrip.New(ids, log),
	}, nil
}
