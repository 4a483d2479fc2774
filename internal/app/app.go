package app

import (
	"github.com/sirupsen/logrus"

	"nkeyid/internal/domain"
)

// App bundles the services commands use.
type App struct {
	Config    Config
	Log       *logrus.Logger
	IDs       domain.IdentityService
	RoundTrip domain.RoundTripService
}
