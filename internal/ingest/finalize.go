package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/remitstats/internal/sql"
	"github.com/gyeh/remitstats/internal/x12"
)

// Finalize stores the computed reconciliation summary on the file record and
// moves it to status "loaded".
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, eraFileID int64, remit *x12.Remittance) (time.Duration, error) {
	start := time.Now()

	s := remit.Summary
	_, err := pool.Exec(ctx, embedsql.StoreERASummary,
		eraFileID,
		s.TotalClaims,
		s.BilledCents,
		s.PaidCents,
		s.PatientRespCents,
		s.ContractualAdjCents,
		s.OtherAdjCents,
		s.ProviderAdjCents,
		remit.Financial.PaymentDateParsed,
		remit.Financial.PaymentMethod,
	)
	if err != nil {
		return 0, fmt.Errorf("store summary: %w", err)
	}

	log.Info().
		Int64("era_file_id", eraFileID).
		Int("claims", s.TotalClaims).
		Int64("paid_cents", s.PaidCents).
		Int64("declared_cents", s.DeclaredCents).
		Msg("file finalized")

	return time.Since(start), nil
}
