package standalone

import (
	"go.uber.org/fx"

	"greeter/handler"
	"greeter/internal/server"
	"greeter/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide handlers
		handler.Module(),
		// provide server
		server.Module(config.HttpConfig),
	)
}
