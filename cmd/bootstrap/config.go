package bootstrap

import (
	"time"

	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		clock.NewRealClock,
		NewAppLocation,
	),
)

// NewAppLocation is the salon's home zone, used for "today" and for branches created without a zone.
func NewAppLocation(cfg config.Config) (*time.Location, error) {
	return cfg.App.Location()
}
