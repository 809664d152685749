package decode

import (
	"io"

	"github.com/blockmap/codec/format"
	"github.com/blockmap/codec/gzipskip"
	"github.com/blockmap/codec/section"
	"github.com/blockmap/codec/stream"
	"github.com/blockmap/codec/world"
)

// Fcm decodes an fCraft .fcm stream: an uncompressed 79-byte header
// followed by a GZIP-compressed remainder (metadata triples then raw
// blocks).
func Fcm(r io.Reader, opts ...Option) (*world.World, error) {
	if _, err := newConfig(opts...); err != nil {
		return nil, err
	}

	outer := stream.New(r)

	headerBytes, err := outer.ReadExact(section.FcmHeaderSize)
	if err != nil {
		return nil, format.NewDecodeError(format.KindFcm, outer.Offset(), err)
	}

	var hdr section.FcmHeader
	if err := hdr.Parse(headerBytes); err != nil {
		return nil, format.NewDecodeError(format.KindFcm, outer.Offset(), err)
	}

	w := world.New()
	w.Width = hdr.Width
	w.Height = hdr.Height
	w.Length = hdr.Length
	w.UUID = hdr.UUID
	w.Spawn.X = hdr.SpawnXf()
	w.Spawn.Y = hdr.SpawnYf()
	w.Spawn.Z = hdr.SpawnZf()
	w.Spawn.Yaw = hdr.Yaw
	w.Spawn.Pitch = hdr.Pitch

	inflated, err := gzipskip.NewReader(r)
	if err != nil {
		return nil, format.NewDecodeError(format.KindFcm, outer.Offset(), err)
	}
	sr := stream.New(inflated)

	for range hdr.MetaCount {
		if err := skipFcmString(sr); err != nil { // Group
			return nil, format.NewDecodeError(format.KindFcm, sr.Offset(), err)
		}
		if err := skipFcmString(sr); err != nil { // Key
			return nil, format.NewDecodeError(format.KindFcm, sr.Offset(), err)
		}
		if err := skipFcmString(sr); err != nil { // Value
			return nil, format.NewDecodeError(format.KindFcm, sr.Offset(), err)
		}
	}

	volume := hdr.Volume()
	blocks, err := sr.ReadExact(volume)
	if err != nil {
		return nil, format.NewDecodeError(format.KindFcm, sr.Offset(), err)
	}
	w.Blocks = blocks

	if err := w.Validate(); err != nil {
		return nil, format.NewDecodeError(format.KindFcm, sr.Offset(), err)
	}

	return w, nil
}

func skipFcmString(sr *stream.Reader) error {
	n, err := sr.ReadU16BE()
	if err != nil {
		return err
	}

	return sr.Skip(int(n))
}
