package zerr

type constError string

func (err constError) Error() string {
	return string(err)
}

const (
	ErrArity      constError = "gdeflate wrong number of arguments"
	ErrArgument   constError = "gdeflate arguments must be byte buffers"
	ErrAlloc      constError = "gdeflate fail alloc decompressor"
	ErrDecompress constError = "gdeflate fail decompress"
	ErrDstSize    constError = "gdeflate dst buffer too small"
)
