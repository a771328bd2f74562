package bootstrap

import (
	"fmt"
	"time"

	"fitcoach-booking/internal/pkg/config"
	"fitcoach-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}

	return jwt.NewService(cfg.JWT.Secret, duration), nil
}
