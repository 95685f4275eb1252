package ops

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nulijiazaizhong/gdeflate"
)

func RunDeflate() error {
	return runDecompress(
		false,
		CLI.Deflate.File,
		CLI.Deflate.Output,
		CLI.Deflate.Size,
		CLI.Deflate.Force,
		CLI.Deflate.Quiet,
	)
}

func RunGDeflate() error {
	return runDecompress(
		true,
		CLI.Gdeflate.File,
		CLI.Gdeflate.Output,
		CLI.Gdeflate.Size,
		CLI.Gdeflate.Force,
		CLI.Gdeflate.Quiet,
	)
}

func runDecompress(gd bool, name, output string, size int, force, quiet bool) error {

	rdwr, err := newTarget(name, output, force)
	if err != nil {
		return err
	}
	defer rdwr.Close()

	src, err := io.ReadAll(rdwr.Reader())
	if err != nil {
		return fmt.Errorf("fail read source: %w", err)
	}

	var (
		start = time.Now()
		out   []byte
	)

	switch {
	case size > 0:
		// Exact capacity specified; run the strict two-buffer call.
		dst := make([]byte, size)
		st, err := decompressStrict(gd, src, dst)
		if err != nil {
			return err
		}
		if st != gdeflate.StatusSuccess {
			return fmt.Errorf("decompress status %d (%s)", int(st), st)
		}
		out = dst
	case gd:
		if out, err = gdeflate.DecompressGDeflate(src); err != nil {
			return err
		}
	default:
		if out, err = gdeflate.DecompressDeflate(src); err != nil {
			return err
		}
	}

	wr := rdwr.Writer()
	if _, err := wr.Write(out); err != nil {
		return fmt.Errorf("fail write output: %w", err)
	}
	if err := wr.Close(); err != nil {
		return err
	}

	if wr != os.Stdout && !quiet {
		tdiff := time.Since(start)
		percent := float64(len(src)) / float64(len(out)) * 100.0

		t := table.NewWriter()
		t.SetTitle("Decompress results")
		t.SetStyle(table.StyleColoredBright)
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Key", "Value"})
		t.AppendRows([]table.Row{
			{"Input", rdwr.srcName()},
			{"Output", rdwr.dstName()},
			{"InSize", len(src)},
			{"OutSize", len(out)},
			{"Duration", tdiff.Round(time.Microsecond)},
			{"Ratio", fmt.Sprintf("%.2f%%", percent)},
		})
		t.Render()
	}
	return nil
}

func decompressStrict(gd bool, src, dst []byte) (gdeflate.StatusT, error) {
	if gd {
		return gdeflate.GDeflate(src, dst)
	}
	return gdeflate.Deflate(src, dst)
}
