package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"greeter/util/logging"
)

var (
	runCmdDescription = `The run command detects the execution environment from the
environment variables and starts the service. This allows
the service to be deployed on arbitrary platforms, without
having to define the server configuration at buildtime.

If the AWS_LAMBDA_RUNTIME_API environment variable is set,
greeter will start the AWS Lambda runtime handler, matching
the behaviour of the lambda command.

Otherwise, greeter will start the standalone http server.
	`
	runCmd = &cli.Command{
		Name:        "run",
		Usage:       "Detect execution environment and start the service.",
		Description: runCmdDescription,
		Action:      runAction,
		Flags:       []cli.Flag{},
	}
)

func runAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	if isAWSLambda() {
		log.Info("detected AWS Lambda environment")
		return lambdaAction(ctx)
	}

	log.Info("detected standalone environment")
	return serveAction(ctx)
}

func isAWSLambda() bool {
	env, ok := os.LookupEnv("AWS_LAMBDA_RUNTIME_API")
	return ok && env != ""
}

func init() {
	runCmd.Flags = append(runCmd.Flags, serveCmd.Flags...)
	runCmd.Flags = append(runCmd.Flags, lambdaCmd.Flags...)

	rootApp.Commands = append(rootApp.Commands, runCmd)
}
