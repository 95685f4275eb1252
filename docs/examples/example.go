package main

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/flate"
	"github.com/nulijiazaizhong/gdeflate"
)

// Produce a raw DEFLATE stream to feed the decompressor.
func compress(payload []byte) ([]byte, error) {

	var buf bytes.Buffer

	wr, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}

	if _, err := wr.Write(payload); err != nil {
		return nil, err
	}

	// Close flushes pending output and terminates the stream.
	if err := wr.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func main() {

	payload := []byte("How now brown cow")

	src, err := compress(payload)
	if err != nil {
		panic(err)
	}

	// The strict two-buffer call: the output buffer carries the exact
	// decompressed size and the result is a numeric status.
	dst := make([]byte, len(payload))

	st, err := gdeflate.Deflate(src, dst)
	if err != nil {
		// Only handle allocation fails this way; decode outcomes are
		// reported through the status code.
		panic(err)
	}

	fmt.Println(st, string(dst))

	// The host-style dynamic call used by embedding environments.
	fns := gdeflate.Exports()

	res, err := fns["gdeflate"](src, dst)
	if err != nil {
		panic(err)
	}

	fmt.Println(res, string(dst))
}
