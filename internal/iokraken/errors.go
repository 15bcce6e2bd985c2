package iokraken

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnreads/pkg/errcode"
)

func fieldCountError(got int) error {
	return fmt.Errorf("expected 5 tab-separated fields, got %d", got)
}

func fieldParseError(field, value string) error {
	return fmt.Errorf("cannot parse %s field: '%s'", field, value)
}

func OpenError(path string, err error) error {
	msg := "Cannot read classifier output <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.KrakenOpenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read %s: %w",
			fn, path, err),
	}
}

func LineParseError(path string, lineNum int, err error) error {
	msg := "Malformed classifier output line %d in <em>%s</em>"
	vars := []any{lineNum, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.KrakenLineParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s line %d: %w",
			fn, path, lineNum, err),
	}
}

func ReportOpenError(path string, err error) error {
	msg := "Cannot open classification report <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportOpenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open %s: %w",
			fn, path, err),
	}
}

func reportRequiredError() error {
	msg := "A classification report is required for --parents or --children"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportOpenError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: report required but not provided", fn),
	}
}

func noTaxaError() error {
	msg := "No taxon IDs were resolved for extraction"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NoTaxaResolvedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: resolved taxon ID set is empty", fn),
	}
}
