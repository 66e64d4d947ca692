package lambda

import (
	"go.uber.org/fx"

	"greeter/handler"
	"greeter/util/logging"
)

func Module() fx.Option {
	return fx.Module(
		"lambda",
		// rename logger for module
		logging.DecorateLogger("lambda"),
		// provide http adapter
		fx.Provide(handler.NewApiHandler),
		// provide handler
		fx.Provide(NewLifecycleHandler),
		// invoke handler
		fx.Invoke(func(*LambdaHandler) {}),
	)
}
