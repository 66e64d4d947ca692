package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"greeter/api"
	"greeter/config"
	"greeter/internal/shell"
	"greeter/util/conf"
	"greeter/util/logging"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide api router
		api.Module(),
	)

	return shell.New(log, sharedModule), nil
}
