package main

import (
	"context"
	"log"
	"os"

	"vantagelite/cmd"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"go.uber.org/zap"
)

type lambdaHandler struct {
	ginLambda *ginadapter.GinLambda
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	zap.S().Infow("lambda invocation",
		"method", req.HTTPMethod,
		"path", req.Path,
	)

	return m.ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	apiHandler, _, err := cmd.InitializeDependencies(os.Getenv("VANTAGE_CONFIG_FILE"))
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	handler := lambdaHandler{
		ginLambda: ginadapter.New(apiHandler.InitializeRouterEngine()),
	}
	lambda.Start(handler.Handler)
}
