package handler

import (
	"go.uber.org/fx"

	"greeter/util/logging"
)

func Module() fx.Option {
	return fx.Module("handler",
		// rename logger for module
		logging.DecorateLogger("handler"),
		// provide http adapter
		fx.Provide(NewApiHandler),
		// provide routes
		fx.Provide(NewRootRoute),
	)
}
