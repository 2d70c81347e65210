package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aicedeno1/quotations-business-rules/internal/adapter/http/routes"
	"github.com/aicedeno1/quotations-business-rules/internal/infrastructure/config"
	"github.com/aicedeno1/quotations-business-rules/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Quotations Business Rules API
// @version         1.0
// @description     Quotation analytics: revenue, discount impact, chef profitability and tax summaries.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load(config.New())
	if err != nil {
		bootLog := logger.New("info")
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("failed to startup the application")
		os.Exit(1)
	}
}
