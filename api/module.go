package api

import (
	"go.uber.org/fx"

	"greeter/util/logging"
)

// Module provides the api router.
func Module() fx.Option {
	return fx.Module(
		"api",

		// rename logger for module
		logging.DecorateLogger("api"),

		// provide router as the api handler
		fx.Provide(func(params RouterParams) Handler {
			return NewRouter(params)
		}),
	)
}
