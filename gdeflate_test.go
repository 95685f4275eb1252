package gdeflate

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/flate"
)

func deflatePayload(payload []byte) []byte {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		panic(err)
	}
	if _, err := zw.Write(payload); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ExampleDeflate() {

	// Raw DEFLATE stream containing the payload "hello"
	src := deflatePayload([]byte("hello"))

	// Output buffer sized to the exact decompressed length
	dst := make([]byte, 5)

	st, err := Deflate(src, dst)
	if err != nil {
		panic(err)
	}

	fmt.Println(st, string(dst))
	// Output:
	// success hello
}

func ExampleExports() {

	src := deflatePayload([]byte("hello"))
	dst := make([]byte, 5)

	// Entry points as registered with the host
	fns := Exports()

	res, err := fns["gdeflate"](src, dst)
	if err != nil {
		panic(err)
	}

	fmt.Println(res, string(dst))
	// Output:
	// success hello
}

func ExampleDecompressDeflate() {

	src := deflatePayload([]byte("hello"))

	// Decompressed size is discovered by the decoder
	out, err := DecompressDeflate(src)
	if err != nil {
		panic(err)
	}

	fmt.Println(string(out))
	// Output:
	// hello
}
