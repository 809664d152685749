package gzipskip

import (
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/blockmap/codec/stream"
)

// Decompressor wraps a raw byte stream into a DEFLATE-decoding stream,
// matching the "externally supplied streaming inflater" contract the
// decoders are built against. It backs onto klauspost/compress's flate
// reader, which the pack already depends on for this exact concern.
type Decompressor interface {
	io.Reader
}

// NewReader skips the GZIP member header on r, then returns a Decompressor
// that streams the inflated DEFLATE payload. The caller drives it with a
// fresh *stream.Reader via stream.New.
func NewReader(r io.Reader) (Decompressor, error) {
	sr := stream.New(r)
	if err := SkipHeader(sr); err != nil {
		return nil, err
	}

	return flate.NewReader(r), nil
}
