package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DBConnError     = 3
	ParseError      = 4
	CopyError       = 5
	ExportError     = 6
)
