package bootstrap

import (
	"fitcoach-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	LoggerModule,
	JWTModule,
	LiveModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
