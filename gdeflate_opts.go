package gdeflate

// Options for DecompressDeflate and DecompressGDeflate.
type BlockOpt func(blockOpt) blockOpt

type blockOpt struct {
	dst []byte
}

// Specify destination buffer for decompression.
// If not provided, will allocate sufficient space.
// If the provided slice is too small, an error will be returned.
func WithDst(dst []byte) BlockOpt {
	return func(o blockOpt) blockOpt {
		o.dst = dst
		return o
	}
}

func parseBlockOpts(opts ...BlockOpt) blockOpt {
	var o blockOpt
	for _, opt := range opts {
		o = opt(o)
	}
	return o
}
