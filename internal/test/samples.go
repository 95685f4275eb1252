package test

import (
	"bytes"
	mrand "math/rand/v2"
	"testing"

	"github.com/klauspost/compress/flate"
)

// Compress payload into a raw DEFLATE stream for decode tests.
func compressSample(t testing.TB, payload []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		t.Fatalf("fail create flate writer: %v", err)
	}
	if _, err := zw.Write(payload); err != nil {
		t.Fatalf("fail compress sample: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("fail close flate writer: %v", err)
	}
	return buf.Bytes()
}

// Deterministic payload with a moderate compression ratio.
func genPayload(sz int) []byte {
	rng := mrand.New(mrand.NewPCG(42, uint64(sz)))
	data := make([]byte, sz)
	for i := range data {
		data[i] = byte(rng.IntN(16))
	}
	return data
}

// An input that no DEFLATE decoder accepts; first byte selects the
// reserved block type.
func malformedSample(sz int) []byte {
	return bytes.Repeat([]byte{0xFF}, sz)
}
