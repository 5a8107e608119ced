package sql

import "embed"

// Migrations holds the schema DDL, applied in filename order.
//
//go:embed migrations
var Migrations embed.FS

//go:embed queries/register_era_file.sql
var RegisterERAFile string

//go:embed queries/find_era_file_by_sha.sql
var FindERAFileBySHA string

//go:embed queries/update_era_status.sql
var UpdateERAStatus string

//go:embed queries/store_era_summary.sql
var StoreERASummary string

// StagingTables lists the per-batch staging tables in cleanup order.
var StagingTables = []string{
	"remit.stage_adjustments",
	"remit.stage_service_lines",
	"remit.stage_claims",
}
