package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"

	"github.com/gekko3d/wgpurepro/framework"
	"github.com/gekko3d/wgpurepro/repro"
)

const title = "wgpu-validation-error-repro"

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg, err := framework.ParseFlags(os.Args[1:], title)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		framework.NewDefaultLogger(title, false).Errorf("%v", err)
		os.Exit(2)
	}

	logger := framework.NewDefaultLogger(title, cfg.Debug)
	if err := framework.Run(cfg, logger, repro.New(repro.VariantBlit, logger)); err != nil {
		logger.Errorf("%+v", err)
		os.Exit(1)
	}
}
