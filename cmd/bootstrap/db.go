package bootstrap

import (
	"context"
	"database/sql"

	"salon-backend/internal/infra/db"
	"salon-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		func(sqlDB *sql.DB) db.DBTX { return sqlDB },
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*sql.DB, error) {
	sqlDB, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return sqlDB, nil
}
