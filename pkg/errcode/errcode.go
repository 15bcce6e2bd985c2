package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Taxonomy report errors
	ReportOpenError
	ReportLineParseError
	TreeCorruptError
	TaxonNotFoundError
	NoTaxaResolvedError

	// Classifier output errors
	KrakenOpenError
	KrakenLineParseError

	// Extraction pipeline errors
	InputOpenError
	InputDecodeError
	OutputCreateError
	OutputEncodeError
	PipelinePanicError
)
