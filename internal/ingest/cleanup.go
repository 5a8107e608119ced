package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/remitstats/internal/sql"
)

// Cleanup deletes staging rows for the given batch.
func Cleanup(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, batchID uuid.UUID) error {
	start := time.Now()

	var deleted int64
	for _, table := range embedsql.StagingTables {
		tag, err := pool.Exec(ctx, "DELETE FROM "+table+" WHERE ingest_batch_id = $1", batchID)
		if err != nil {
			return err
		}
		deleted += tag.RowsAffected()
	}

	log.Info().
		Int64("rows_deleted", deleted).
		Dur("duration", time.Since(start)).
		Msg("staging cleanup complete")

	return nil
}
