package bootstrap

import (
	"loyalty-engine/internal/pkg/config"
	"loyalty-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLoyaltySettings,
	),
)

func NewLoyaltySettings(cfg config.Config) (shared.LoyaltySettings, error) {
	return shared.NewLoyaltySettings(cfg.Loyalty)
}
