package ioextract

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnreads/pkg/errcode"
)

func panicError(r any) error {
	msg := "Extraction pipeline task failed unexpectedly"
	pc, _, _, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PipelinePanicError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: pipeline task panicked: %v", fn, r),
	}
}
