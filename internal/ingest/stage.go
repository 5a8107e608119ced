package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/remitstats/internal/config"
	"github.com/gyeh/remitstats/internal/db"
	"github.com/gyeh/remitstats/internal/model"
	"github.com/gyeh/remitstats/internal/normalize"
	"github.com/gyeh/remitstats/internal/x12"
)

// StageResult holds metrics from the parse+stage phase.
type StageResult struct {
	Remittance        *x12.Remittance
	ClaimsStaged      int64
	LinesStaged       int64
	AdjustmentsStaged int64
	DurationParse     time.Duration
	DurationCopy      time.Duration
}

// Stage parses the 835 content, flattens the aggregate into staging rows,
// and COPY-loads them into the remit staging tables.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, cfg *config.Config) (*StageResult, error) {
	parseStart := time.Now()

	remit, err := x12.Parse(pf.Content)
	if err != nil {
		return nil, fmt.Errorf("stage parse: %w", err)
	}
	parseDur := time.Since(parseStart)

	flat := normalize.Flatten(remit, pf.IngestBatchID, pf.ERAFileID, cfg.GroupSet())

	copyStart := time.Now()

	claims, err := pool.CopyFrom(ctx,
		pgx.Identifier{"remit", "stage_claims"},
		model.ClaimColumns(),
		db.SliceSource(flat.Claims),
	)
	if err != nil {
		return nil, fmt.Errorf("stage copy claims: %w", err)
	}

	lines, err := pool.CopyFrom(ctx,
		pgx.Identifier{"remit", "stage_service_lines"},
		model.ServiceLineColumns(),
		db.SliceSource(flat.Lines),
	)
	if err != nil {
		return nil, fmt.Errorf("stage copy service lines: %w", err)
	}

	adjs, err := pool.CopyFrom(ctx,
		pgx.Identifier{"remit", "stage_adjustments"},
		model.AdjustmentColumns(),
		db.SliceSource(flat.Adjustments),
	)
	if err != nil {
		return nil, fmt.Errorf("stage copy adjustments: %w", err)
	}

	copyDur := time.Since(copyStart)
	log.Info().
		Int64("claims", claims).
		Int64("service_lines", lines).
		Int64("adjustments", adjs).
		Str("parse_duration", parseDur.String()).
		Str("copy_duration", copyDur.String()).
		Msg("staging complete")

	return &StageResult{
		Remittance:        remit,
		ClaimsStaged:      claims,
		LinesStaged:       lines,
		AdjustmentsStaged: adjs,
		DurationParse:     parseDur,
		DurationCopy:      copyDur,
	}, nil
}
