package model

import "time"

// IngestSummary captures metrics from a single file ingest run.
type IngestSummary struct {
	FilePath           string
	FileSHA256         string
	ERAFileID          int64
	IngestBatchID      string
	ClaimsStaged       int64
	LinesStaged        int64
	AdjustmentsStaged  int64
	DurationParse      time.Duration
	DurationCopy       time.Duration
	DurationTotal      time.Duration
}
