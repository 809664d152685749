// Package gzipskip consumes and validates a GZIP member header per RFC 1952,
// then hands the remaining DEFLATE payload to an externally supplied
// streaming inflater. It never inflates the payload itself.
package gzipskip

import (
	"github.com/blockmap/codec/format"
	"github.com/blockmap/codec/stream"
)

const (
	magic0  = 0x1F
	magic1  = 0x8B
	methodDeflate = 0x08

	flagText    = 1 << 0
	flagHCRC    = 1 << 1
	flagExtra   = 1 << 2
	flagName    = 1 << 3
	flagComment = 1 << 4
)

// SkipHeader reads and validates the fixed 10-byte GZIP member header plus
// any optional FEXTRA/FNAME/FCOMMENT/FHCRC sections, leaving r positioned at
// the first byte of the DEFLATE payload.
func SkipHeader(r *stream.Reader) error {
	fixed, err := r.ReadExact(10)
	if err != nil {
		return err
	}

	if fixed[0] != magic0 || fixed[1] != magic1 {
		return format.ErrUnknownFormat
	}
	if fixed[2] != methodDeflate {
		return format.ErrUnknownFormat
	}

	flags := fixed[3]

	if flags&flagExtra != 0 {
		xlen, err := r.ReadU16LE()
		if err != nil {
			return err
		}
		if err := r.Skip(int(xlen)); err != nil {
			return err
		}
	}

	if flags&flagName != 0 {
		if err := skipCString(r); err != nil {
			return err
		}
	}

	if flags&flagComment != 0 {
		if err := skipCString(r); err != nil {
			return err
		}
	}

	if flags&flagHCRC != 0 {
		if err := r.Skip(2); err != nil {
			return err
		}
	}

	return nil
}

// skipCString consumes bytes up to and including the next NUL terminator.
func skipCString(r *stream.Reader) error {
	for {
		b, err := r.ReadU8()
		if err != nil {
			return err
		}
		if b == 0 {
			return nil
		}
	}
}
