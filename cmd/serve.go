package cmd

import (
	"github.com/urfave/cli/v2"

	"greeter/app"
	"greeter/app/standalone"
	"greeter/internal/server"
)

var (
	serveCmdDescription = `The serve command starts a http server and serves the greeting
	and health endpoints. Requests that match no route receive a
	JSON not-found envelope, matched routes with the wrong method
	a method-not-allowed envelope.

	The command will launch the http server and blocks indefin-
	itely, processing incoming http requests.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start a http server and listen for requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on.",
				Value:    "localhost",
				Category: "http",
				EnvVars:  []string{"HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    5000,
				Category: "http",
				EnvVars:  []string{"PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg := standalone.Config{
		HttpConfig: server.HttpConfig{
			Host: ctx.String("host"),
			Port: ctx.Int("port"),
			H2c:  ctx.Bool("h2c"),
		},
	}

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
