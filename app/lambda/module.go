package lambda

import (
	"go.uber.org/fx"

	lambdahandler "greeter/handler/lambda"
	"greeter/util/logging"
)

func Module() fx.Option {
	return fx.Module(
		"lambda",
		// rename logger for module
		logging.DecorateLogger("lambda"),
		// provide handlers
		lambdahandler.Module(),
	)
}
