package ingest

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/remitstats/internal/normalize"
	embedsql "github.com/gyeh/remitstats/internal/sql"
	"github.com/gyeh/remitstats/internal/x12"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// FilePath is the original path passed to Preflight, stored as-is.
	FilePath string
	// Content is the full file text, retained for the parse phase.
	Content string
	// FileSHA256 is the hex-encoded SHA-256 digest of the content.
	FileSHA256 string
	// FileSize is the content length in bytes.
	FileSize int64
	// ERAFileID is the DB primary key for this file record, inserted or
	// looked up via the sha256 unique constraint.
	ERAFileID int64
	// IngestBatchID is a freshly generated UUIDv4 identifying this run,
	// used to tag staged rows for later cleanup.
	IngestBatchID uuid.UUID
	// AlreadyLoaded is true when this sha256 already exists with status
	// "loaded" and force mode is off, signaling the pipeline can skip.
	AlreadyLoaded bool
}

// Preflight reads the file, hashes it, runs the structural pre-flight check,
// and registers the file record. A structurally broken file never reaches
// the parse phase.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, filePath string, force bool) (*PreflightResult, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight read: %w", err)
	}
	content := string(data)

	if problems := x12.Validate835(content); len(problems) > 0 {
		return nil, fmt.Errorf("preflight validate: %s", strings.Join(problems, "; "))
	}

	sha := normalize.ContentHash(content)

	pf := &PreflightResult{
		FilePath:      filePath,
		Content:       content,
		FileSHA256:    sha,
		FileSize:      int64(len(data)),
		IngestBatchID: uuid.New(),
	}

	// Duplicate detection before registering anything.
	var existingID int64
	var existingStatus string
	err = pool.QueryRow(ctx, embedsql.FindERAFileBySHA, sha).Scan(&existingID, &existingStatus)
	switch {
	case err == nil:
		if existingStatus == "loaded" && !force {
			pf.ERAFileID = existingID
			pf.AlreadyLoaded = true
			return pf, nil
		}
	case err == pgx.ErrNoRows:
		// first sighting
	default:
		return nil, fmt.Errorf("preflight lookup: %w", err)
	}

	// Cheap header fields for the file record; the full parse happens later.
	payerName, _ := x12.QuickPayerName(content)
	traceNumber, _ := x12.QuickTraceNumber(content)
	totalCents, _ := x12.QuickTotalAmount(content)

	var status string
	err = pool.QueryRow(ctx, embedsql.RegisterERAFile,
		baseName(filePath),
		sha,
		pf.FileSize,
		payerName,
		normalize.NormalizeName(payerName),
		traceNumber,
		nil, // payment method resolved during finalize
		totalCents,
	).Scan(&pf.ERAFileID, &status)
	if err != nil {
		return nil, fmt.Errorf("preflight register: %w", err)
	}

	log.Info().
		Int64("era_file_id", pf.ERAFileID).
		Str("sha256", sha).
		Str("payer", payerName).
		Str("trace", traceNumber).
		Msg("preflight complete")

	return pf, nil
}

func baseName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// UpdateStatus updates the era_files status column.
func UpdateStatus(ctx context.Context, pool *pgxpool.Pool, eraFileID int64, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateERAStatus, eraFileID, status)
	return err
}
