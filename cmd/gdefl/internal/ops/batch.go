package ops

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nulijiazaizhong/gdeflate"
)

type batchResultT struct {
	file  string
	inSz  int
	outSz int
	tdiff time.Duration
	err   error
}

func RunBatch() error {

	nWorkers := CLI.Cpus
	if nWorkers <= 0 {
		nWorkers = runtime.NumCPU()
	}

	var (
		files   = CLI.Batch.Files
		results = make([]batchResultT, len(files))
		wp      = workerpool.New(nWorkers)
		pw      progress.Writer
		tr      *progress.Tracker
	)

	if !CLI.Batch.Quiet {
		msg := "Decompressing"
		pw = newProgressWriter(1)
		pw.SetMessageLength(len(msg))

		tr = &progress.Tracker{
			Message: msg,
			Total:   int64(len(files)),
		}
		pw.AppendTracker(tr)

		go pw.Render()
	}

	for i, name := range files {
		wp.Submit(func() {
			results[i] = decompressFile(name)
			if tr != nil {
				tr.Increment(1)
			}
		})
	}

	wp.StopWait()

	if pw != nil {
		tr.MarkAsDone()
		for pw.IsRenderInProgress() {
			time.Sleep(time.Millisecond * 100)
		}
	}

	var nFail int
	for _, res := range results {
		if res.err != nil {
			nFail++
		}
	}

	if !CLI.Batch.Quiet {
		renderBatchResults(results)
	}

	if nFail > 0 {
		return fmt.Errorf("%d of %d files failed", nFail, len(files))
	}
	return nil
}

func decompressFile(name string) (res batchResultT) {

	res.file = name

	rdwr, err := newTarget(name, "", CLI.Batch.Force)
	if err != nil {
		res.err = err
		return
	}
	defer rdwr.Close()

	src, err := io.ReadAll(rdwr.Reader())
	if err != nil {
		res.err = err
		return
	}

	var (
		start = time.Now()
		out   []byte
	)

	if CLI.Batch.Gdeflate {
		out, err = gdeflate.DecompressGDeflate(src)
	} else {
		out, err = gdeflate.DecompressDeflate(src)
	}

	if err != nil {
		res.err = err
		return
	}

	wr := rdwr.Writer()
	if _, err := wr.Write(out); err != nil {
		res.err = err
		return
	}
	if err := wr.Close(); err != nil {
		res.err = err
		return
	}

	res.inSz = len(src)
	res.outSz = len(out)
	res.tdiff = time.Since(start)
	return
}

func renderBatchResults(results []batchResultT) {

	t := table.NewWriter()
	t.SetTitle("Batch results")
	t.SetStyle(table.StyleColoredBright)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"File", "InSize", "OutSize", "Duration", "Result"})

	for _, res := range results {
		outcome := "ok"
		if res.err != nil {
			outcome = res.err.Error()
		}
		t.AppendRow(table.Row{
			res.file,
			res.inSz,
			res.outSz,
			res.tdiff.Round(time.Microsecond),
			outcome,
		})
	}
	t.Render()
}

func newProgressWriter(nTrackers int) progress.Writer {
	pw := progress.NewWriter()
	pw.SetAutoStop(true)
	pw.SetMessageLength(24)
	pw.SetNumTrackersExpected(nTrackers)
	pw.SetSortBy(progress.SortByPercentDsc)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerLength(25)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Colors = progress.StyleColorsExample
	pw.Style().Options.PercentFormat = "%4.1f%%"
	pw.Style().Visibility.ETA = true
	pw.Style().Visibility.Percentage = true
	pw.Style().Visibility.Time = true
	return pw
}
