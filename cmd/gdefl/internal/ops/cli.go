package ops

var CLI struct {
	Deflate struct {
		File   string `optional:"" arg:"" type:"existingfile"`
		Output string `help:"Output filename; use '-' for stdout" short:"o"`
		Size   int    `help:"Exact decompressed size in bytes; 0 to auto-size" default:"0" short:"s"`
		Force  bool   `help:"Force overwrite of existing file" short:"f"`
		Quiet  bool   `help:"Do not write results to stdout" short:"q"`
	} `cmd:"" aliases:"d" help:"Decompress a raw DEFLATE stream"`
	Gdeflate struct {
		File   string `optional:"" arg:"" type:"existingfile"`
		Output string `help:"Output filename; use '-' for stdout" short:"o"`
		Size   int    `help:"Exact decompressed size in bytes; 0 to auto-size" default:"0" short:"s"`
		Force  bool   `help:"Force overwrite of existing file" short:"f"`
		Quiet  bool   `help:"Do not write results to stdout" short:"q"`
	} `cmd:"" aliases:"g" help:"Decompress a single-page GDeflate stream"`
	Batch struct {
		Files    []string `arg:"" type:"existingfile" help:"Input files to decompress"`
		Gdeflate bool     `help:"Treat inputs as GDeflate streams" short:"g"`
		Force    bool     `help:"Force overwrite of existing files" short:"f"`
		Quiet    bool     `help:"Do not write results to stdout" short:"q"`
	} `cmd:"" aliases:"b" help:"Decompress many files concurrently"`

	Cpus int `help:"Batch concurrency [-1 auto]" default:"-1" short:"c"`
}
