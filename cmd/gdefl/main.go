package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/nulijiazaizhong/gdeflate/cmd/gdefl/internal/ops"
)

func main() {

	var (
		errS string
		kctx = kong.Parse(&ops.CLI)
	)

	switch kctx.Command() {
	case "deflate", "deflate <file>":
		if err := ops.RunDeflate(); err != nil {
			errS = fmt.Sprintf("fail deflate: %v", err)
		}
	case "gdeflate", "gdeflate <file>":
		if err := ops.RunGDeflate(); err != nil {
			errS = fmt.Sprintf("fail gdeflate: %v", err)
		}
	case "batch <files>":
		if err := ops.RunBatch(); err != nil {
			errS = fmt.Sprintf("fail batch: %v", err)
		}
	default:
		errS = fmt.Sprintf("unknown command '%s'", kctx.Command())
	}

	if errS != "" {
		fmt.Fprintf(os.Stderr, "gdefl: %s\n", errS)
		os.Exit(1)
	}
}
