package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aicedeno1/quotations-business-rules/internal/adapter/persistence/repository"
	"github.com/aicedeno1/quotations-business-rules/internal/infrastructure/config"
	"github.com/aicedeno1/quotations-business-rules/internal/infrastructure/logger"
	"github.com/aicedeno1/quotations-business-rules/internal/usecase"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app holds what every report subcommand needs once the root command has run.
type app struct {
	v       *viper.Viper
	reports usecase.IReportUseCase
	close   func() error
}

// NewRootCommand builds the quotation-reports command tree. Flags override
// the environment; both feed the same viper instance as the API.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New(), close: func() error { return nil }}

	root := &cobra.Command{
		Use:          "quotation-reports",
		Short:        "Print quotation reports as JSON",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(a.v, cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			return a.open(cmd.Context(), cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
	}

	flags := root.PersistentFlags()
	flags.String("store", "", "store driver: dynamodb, postgres or file (env STORE_DRIVER)")
	flags.String("file", "", "quotations JSON file for the file store (env QUOTATIONS_FILE)")
	flags.String("table", "", "DynamoDB table (env QUOTATIONS_TABLE)")
	flags.String("database-url", "", "PostgreSQL DSN (env DATABASE_URL)")
	flags.String("log-level", "", "log level (env LOG_LEVEL)")

	root.AddCommand(
		newRevenueCommand(a),
		newDiscountCommand(a),
		newChefsCommand(a),
		newTaxesCommand(a),
	)
	return root
}

// flagKeys maps viper keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"store_driver":     "store",
	"quotations_file":  "file",
	"quotations_table": "table",
	"database_url":     "database-url",
	"log_level":        "log-level",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}

func (a *app) open(ctx context.Context, stderr io.Writer) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	log := logger.NewWithWriter(stderr, cfg.LogLevel)
	repo, closeStore, err := repository.OpenQuotationStore(log.WithContext(ctx), cfg)
	if err != nil {
		return fmt.Errorf("failed to open quotation store: %w", err)
	}
	a.reports = usecase.NewReportUseCase(repo)
	a.close = closeStore
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
