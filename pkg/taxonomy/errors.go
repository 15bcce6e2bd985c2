package taxonomy

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnreads/pkg/errcode"
)

func fieldCountError(got int) error {
	return fmt.Errorf("expected 6 tab-separated fields, got %d", got)
}

func fieldParseError(field, value string) error {
	return fmt.Errorf("cannot parse %s field: '%s'", field, value)
}

func lineError(lineNum int, err error) error {
	msg := "Malformed report line %d"
	vars := []any{lineNum}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportLineParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: report line %d: %w",
			fn, lineNum, err),
	}
}

func readError(err error) error {
	msg := "Cannot read classification report"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportOpenError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot read report: %w", fn, err),
	}
}

func corruptError(idx, size int) error {
	msg := "Taxonomy tree is corrupt"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TreeCorruptError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: index %d out of range for tree of %d nodes",
			fn, idx, size),
	}
}

func notFoundError(taxonID int) error {
	msg := "Taxon ID <em>%d</em> is not in the classification report"
	vars := []any{taxonID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TaxonNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: taxon ID %d not found in taxonomy map",
			fn, taxonID),
	}
}
