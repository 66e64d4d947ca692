package lambda

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"greeter/handler"
)

type LambdaHandlerParams struct {
	fx.In

	Context context.Context
	Handler *handler.ApiHandler
	Logger  *zap.Logger
}

// LambdaHandler runs the http adapter behind the AWS Lambda runtime
// interface client, proxying API Gateway / ALB events to it.
type LambdaHandler struct {
	ctx     context.Context
	cancel  context.CancelFunc
	handler *handler.ApiHandler
	log     *zap.Logger
}

func NewLambdaHandler(params LambdaHandlerParams) *LambdaHandler {
	ctx, cancel := context.WithCancel(params.Context)

	return &LambdaHandler{
		ctx:     ctx,
		cancel:  cancel,
		handler: params.Handler,
		log:     params.Logger,
	}
}

func NewLifecycleHandler(params LambdaHandlerParams, lc fx.Lifecycle) *LambdaHandler {
	handler := NewLambdaHandler(params)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go handler.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			handler.Shutdown()
			return nil
		},
	})
	return handler
}

func (s *LambdaHandler) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handler.ServeHTTP)

	lambda.StartWithOptions(
		httpadapter.New(mux).ProxyWithContext,
		lambda.WithContext(s.ctx),
	)
}

func (s *LambdaHandler) Shutdown() {
	s.cancel()
}
