package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/remitstats/internal/config"
	"github.com/gyeh/remitstats/internal/model"
	embedsql "github.com/gyeh/remitstats/internal/sql"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full ingest pipeline: preflight → stage → finalize, with
// staging cleanup on failure.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.IngestSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg.FilePath, cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	if pf.AlreadyLoaded {
		log.Info().
			Int64("era_file_id", pf.ERAFileID).
			Str("sha256", pf.FileSHA256).
			Msg("file already loaded, skipping (use --force to re-import)")
		return &model.IngestSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			ERAFileID:     pf.ERAFileID,
			IngestBatchID: pf.IngestBatchID.String(),
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// On --force, clear any rows a previous run left behind for this file.
	if cfg.Force {
		if err := DeleteFileStaging(ctx, pool, pf.ERAFileID); err != nil {
			return nil, &PipelineError{Phase: "preflight", Err: err}
		}
	}

	// Phase 2: Parse and stage
	log.Info().Msg("starting staging")
	if err := UpdateStatus(ctx, pool, pf.ERAFileID, "staging"); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	stageResult, err := Stage(ctx, pool, log, pf, cfg)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.ERAFileID, "failed")
		if cleanupErr := Cleanup(ctx, pool, log, pf.IngestBatchID); cleanupErr != nil {
			log.Warn().Err(cleanupErr).Msg("staging cleanup failed (non-fatal)")
		}
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	// Phase 3: Finalize
	log.Info().Msg("finalizing")
	if _, err := Finalize(ctx, pool, log, pf.ERAFileID, stageResult.Remittance); err != nil {
		_ = UpdateStatus(ctx, pool, pf.ERAFileID, "failed")
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}

	summary := &model.IngestSummary{
		FilePath:          pf.FilePath,
		FileSHA256:        pf.FileSHA256,
		ERAFileID:         pf.ERAFileID,
		IngestBatchID:     pf.IngestBatchID.String(),
		ClaimsStaged:      stageResult.ClaimsStaged,
		LinesStaged:       stageResult.LinesStaged,
		AdjustmentsStaged: stageResult.AdjustmentsStaged,
		DurationParse:     stageResult.DurationParse,
		DurationCopy:      stageResult.DurationCopy,
		DurationTotal:     time.Since(totalStart),
	}

	log.Info().
		Int64("claims", summary.ClaimsStaged).
		Int64("service_lines", summary.LinesStaged).
		Int64("adjustments", summary.AdjustmentsStaged).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("ingest pipeline complete")

	return summary, nil
}

// DeleteFileStaging removes all staged rows for a file, across batches. Used
// by forced re-imports.
func DeleteFileStaging(ctx context.Context, pool *pgxpool.Pool, eraFileID int64) error {
	for _, table := range embedsql.StagingTables {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table+" WHERE era_file_id = $1", eraFileID); err != nil {
			return fmt.Errorf("delete staging for file %d: %w", eraFileID, err)
		}
	}
	return nil
}
