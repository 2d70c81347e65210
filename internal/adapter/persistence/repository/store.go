package repository

import (
	"context"
	"fmt"

	"github.com/aicedeno1/quotations-business-rules/internal/infrastructure/config"
	"github.com/aicedeno1/quotations-business-rules/internal/infrastructure/database"
	"github.com/aicedeno1/quotations-business-rules/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// OpenQuotationStore builds the repository selected by STORE_DRIVER. The
// returned close func releases the underlying connection and is never nil.
func OpenQuotationStore(ctx context.Context, cfg *config.Config) (interfaces.IQuotationRepository, func() error, error) {
	noop := func() error { return nil }
	log := zerolog.Ctx(ctx).With().Str("layer", "repository").Str("driver", cfg.StoreDriver).Logger()

	switch cfg.StoreDriver {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("table", cfg.QuotationsTable).Msg("quotation store ready")
		return NewQuotationDynamoRepository(ddb, cfg.QuotationsTable), noop, nil

	case config.StorePostgres:
		db, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		repo := NewQuotationPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		log.Info().Msg("quotation store ready")
		return repo, db.Close, nil

	case config.StoreFile:
		repo, err := NewQuotationFileRepository(cfg.QuotationsFile)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("file", cfg.QuotationsFile).Msg("quotation store ready")
		return repo, noop, nil
	}
	return nil, noop, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}
