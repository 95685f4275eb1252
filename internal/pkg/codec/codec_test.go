package codec

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/flate"
)

func deflateSample(t testing.TB, payload []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		t.Fatalf("fail create flate writer: %v", err)
	}
	if _, err := zw.Write(payload); err != nil {
		t.Fatalf("fail compress: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("fail close flate writer: %v", err)
	}
	return buf.Bytes()
}

func TestDeflateDecompress(t *testing.T) {

	payload := []byte("the quick brown fox jumps over the lazy dog")
	src := deflateSample(t, payload)

	d, err := AllocDecompressor()
	if err != nil {
		t.Fatalf("fail alloc: %v", err)
	}
	defer d.Free()

	dst := make([]byte, len(payload))
	if st := d.Decompress(src, dst, nil); st != StatusSuccess {
		t.Fatalf("expected success, got %v", st)
	}
	if !bytes.Equal(dst, payload) {
		t.Fatalf("payload mismatch")
	}
}

// With no output-length reporting, the stream must fill dst exactly.
func TestDeflateShortOutput(t *testing.T) {

	payload := []byte("payload")
	src := deflateSample(t, payload)

	d, err := AllocDecompressor()
	if err != nil {
		t.Fatalf("fail alloc: %v", err)
	}
	defer d.Free()

	dst := make([]byte, len(payload)+1)
	if st := d.Decompress(src, dst, nil); st != StatusShortOutput {
		t.Fatalf("expected short output, got %v", st)
	}

	// Same call with reporting enabled succeeds.
	var n int
	if st := d.Decompress(src, dst, &n); st != StatusSuccess {
		t.Fatalf("expected success, got %v", st)
	}
	if n != len(payload) {
		t.Fatalf("expected outLen %d, got %d", len(payload), n)
	}
}

func TestDeflateInsufficientSpace(t *testing.T) {

	payload := []byte("payload")
	src := deflateSample(t, payload)

	d, err := AllocDecompressor()
	if err != nil {
		t.Fatalf("fail alloc: %v", err)
	}
	defer d.Free()

	dst := make([]byte, len(payload)-1)
	if st := d.Decompress(src, dst, nil); st != StatusInsufficientSpace {
		t.Fatalf("expected insufficient space, got %v", st)
	}
}

func TestDeflateEmptySrc(t *testing.T) {

	d, err := AllocDecompressor()
	if err != nil {
		t.Fatalf("fail alloc: %v", err)
	}
	defer d.Free()

	if st := d.Decompress(nil, make([]byte, 8), nil); st != StatusBadData {
		t.Fatalf("expected bad data, got %v", st)
	}
}

// A stream whose payload is empty decodes into a zero-length dst.
func TestDeflateEmptyPayload(t *testing.T) {

	src := deflateSample(t, nil)

	d, err := AllocDecompressor()
	if err != nil {
		t.Fatalf("fail alloc: %v", err)
	}
	defer d.Free()

	if st := d.Decompress(src, nil, nil); st != StatusSuccess {
		t.Fatalf("expected success, got %v", st)
	}
}

// Pages decode independently in page order; outputs concatenate.
func TestGDeflateMultiPage(t *testing.T) {

	chunks := [][]byte{
		[]byte("alpha alpha alpha"),
		[]byte("beta beta"),
		[]byte("gamma gamma gamma gamma"),
	}

	var (
		pages []PageT
		want  []byte
	)
	for _, chunk := range chunks {
		pages = append(pages, PageT{Data: deflateSample(t, chunk)})
		want = append(want, chunk...)
	}

	g, err := AllocGDeflate()
	if err != nil {
		t.Fatalf("fail alloc: %v", err)
	}
	defer g.Free()

	dst := make([]byte, len(want))
	if st := g.Decompress(pages, dst, nil); st != StatusSuccess {
		t.Fatalf("expected success, got %v", st)
	}
	if !bytes.Equal(dst, want) {
		t.Fatalf("payload mismatch")
	}
}

func TestGDeflateZeroPages(t *testing.T) {

	g, err := AllocGDeflate()
	if err != nil {
		t.Fatalf("fail alloc: %v", err)
	}
	defer g.Free()

	if st := g.Decompress(nil, make([]byte, 8), nil); st != StatusBadData {
		t.Fatalf("expected bad data, got %v", st)
	}
}

func TestGDeflatePageOverflow(t *testing.T) {

	var (
		payload = []byte("a page that will not fit")
		pages   = []PageT{{Data: deflateSample(t, payload)}}
	)

	g, err := AllocGDeflate()
	if err != nil {
		t.Fatalf("fail alloc: %v", err)
	}
	defer g.Free()

	dst := make([]byte, len(payload)/2)
	if st := g.Decompress(pages, dst, nil); st != StatusInsufficientSpace {
		t.Fatalf("expected insufficient space, got %v", st)
	}
}

// Alloc/free must balance; double free is a no-op.
func TestHandleAccounting(t *testing.T) {

	base := CntLive()

	d, err := AllocDecompressor()
	if err != nil {
		t.Fatalf("fail alloc: %v", err)
	}
	g, err := AllocGDeflate()
	if err != nil {
		t.Fatalf("fail alloc: %v", err)
	}

	if n := CntLive(); n != base+2 {
		t.Fatalf("expected %d live handles, got %d", base+2, n)
	}

	d.Free()
	d.Free()
	g.Free()
	g.Free()

	if n := CntLive(); n != base {
		t.Fatalf("expected %d live handles after free, got %d", base, n)
	}
}
