package iofastx

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnreads/pkg/errcode"
)

func malformedError(reason string) error {
	return errors.New(reason)
}

func unknownFormatError(s string) error {
	return fmt.Errorf("unknown compression format: '%s'", s)
}

func InputOpenError(path string, err error) error {
	msg := "Cannot open sequence file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputOpenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open %s: %w",
			fn, path, err),
	}
}

func InputDecodeError(path string, line int, err error) error {
	msg := "Malformed FASTQ record in <em>%s</em> near line %d"
	vars := []any{path, line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputDecodeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s line %d: %w",
			fn, path, line, err),
	}
}

func OutputCreateError(path string, err error) error {
	msg := "Cannot create output file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputCreateError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create %s: %w",
			fn, path, err),
	}
}

func OutputEncodeError(path string, err error) error {
	msg := "Cannot write to output file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputEncodeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write %s: %w",
			fn, path, err),
	}
}
