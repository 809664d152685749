package decode

import (
	"compress/gzip"
	"io"
	"strings"

	"github.com/blockmap/codec/format"
	"github.com/blockmap/codec/stream"
	"github.com/blockmap/codec/world"
)

// Java serialization stream type codes (java.io.ObjectStreamConstants),
// restricted to the handful this decoder ever encounters.
const (
	javaTcNull        = 0x70
	javaTcReference    = 0x71
	javaTcClassDesc    = 0x72
	javaTcObject       = 0x73
	javaTcString       = 0x74
	javaTcArray        = 0x75
	javaTcEndBlockData = 0x78
)

// Java field type codes, taken directly from the serialized field
// descriptor's one-byte type tag.
const (
	javaFieldI8     = 'B'
	javaFieldF32    = 'F'
	javaFieldI32    = 'I'
	javaFieldI64    = 'J'
	javaFieldBool   = 'Z'
	javaFieldArray  = '['
	javaFieldObject = 'L'
)

const datJNameMax = 48

// javaFieldDesc is one field entry in a serialized class descriptor: a type
// tag and name. Object/Array fields additionally carry a class name the
// decoder never needs, so it is read and discarded.
type javaFieldDesc struct {
	Type byte
	Name string
}

// javaClassDesc is a serialized class descriptor: a name and its field
// list. Superclass descriptors are read (to stay aligned with the stream)
// and discarded.
type javaClassDesc struct {
	Name   string
	Fields []javaFieldDesc
}

// datField holds one field's decoded value, tagged by the same type code
// that was read along with its descriptor.
type datField struct {
	Type  byte
	I32   int32
	Array []byte
}

// Dat decodes a Minecraft Classic server .dat save: a GZIP-wrapped, DEFLATE
// compressed Java object-serialization stream holding one flat object with
// the world's dimensions, spawn point, and block array among its fields.
func Dat(r io.Reader, opts ...Option) (*world.World, error) {
	if _, err := newConfig(opts...); err != nil {
		return nil, err
	}

	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, format.NewDecodeError(format.KindDat, 0, err)
	}
	defer gz.Close()

	sr := stream.New(gz)

	if err := readDatHeader(sr); err != nil {
		return nil, format.NewDecodeError(format.KindDat, sr.Offset(), err)
	}

	root, err := readJavaClassDesc(sr)
	if err != nil {
		return nil, format.NewDecodeError(format.KindDat, sr.Offset(), err)
	}

	w := world.New()

	for _, fd := range root.Fields {
		val, err := readJavaFieldData(sr, fd)
		if err != nil {
			return nil, format.NewDecodeError(format.KindDat, sr.Offset(), err)
		}

		applyDatField(w, fd.Name, val)
	}

	if err := w.Validate(); err != nil {
		return nil, format.NewDecodeError(format.KindDat, sr.Offset(), err)
	}

	return w, nil
}

// readDatHeader validates the ten-byte header following the GZIP member:
// a four-byte save identifier, a one-byte save version, and the Java
// serialization stream's own magic/version/root-type-code triple.
func readDatHeader(sr *stream.Reader) error {
	magic, err := sr.ReadU32BE()
	if err != nil {
		return err
	}
	if magic != 0x271BB788 {
		return format.ErrDatIdentifier
	}

	version, err := sr.ReadU8()
	if err != nil {
		return err
	}
	if version != 0x02 {
		return format.ErrDatVersion
	}

	javaMagic, err := sr.ReadU16BE()
	if err != nil {
		return err
	}
	if javaMagic != 0xACED {
		return format.ErrDatJIdentifier
	}

	javaVersion, err := sr.ReadU16BE()
	if err != nil {
		return err
	}
	if javaVersion != 0x0005 {
		return format.ErrDatJVersion
	}

	root, err := sr.ReadU8()
	if err != nil {
		return err
	}
	if root != javaTcObject {
		return format.ErrDatRootType
	}

	return nil
}

// readJavaUTF reads a Java serialization "modified UTF" string: a u16 BE
// byte length followed by that many bytes, capped at datJNameMax as every
// field/class name this decoder ever reads is well within that bound.
func readJavaUTF(sr *stream.Reader) (string, error) {
	n, err := sr.ReadU16BE()
	if err != nil {
		return "", err
	}
	if int(n) > datJNameMax {
		return "", format.ErrDatJStringLen
	}

	b, err := sr.ReadExact(int(n))
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// readJavaFieldDesc reads one field descriptor: its type tag, its name, and
// (for Array/Object fields) a discarded class-name reference.
func readJavaFieldDesc(sr *stream.Reader) (javaFieldDesc, error) {
	var fd javaFieldDesc

	t, err := sr.ReadU8()
	if err != nil {
		return fd, err
	}
	fd.Type = t

	name, err := readJavaUTF(sr)
	if err != nil {
		return fd, err
	}
	fd.Name = name

	if fd.Type != javaFieldArray && fd.Type != javaFieldObject {
		return fd, nil
	}

	typeCode, err := sr.ReadU8()
	if err != nil {
		return fd, err
	}

	switch typeCode {
	case javaTcString:
		if _, err := readJavaUTF(sr); err != nil {
			return fd, err
		}
	case javaTcReference:
		if err := sr.Skip(4); err != nil {
			return fd, err
		}
	default:
		return fd, format.ErrDatJFieldClassName
	}

	return fd, nil
}

// readJavaClassDesc reads a class descriptor (name, field list, the
// TC_ENDBLOCKDATA annotation terminator) and then its superclass descriptor
// recursively, so the stream stays aligned even though the superclass
// chain is otherwise discarded. TC_NULL is the terminal case, for both the
// outermost call and every "no superclass" recursion.
func readJavaClassDesc(sr *stream.Reader) (javaClassDesc, error) {
	var desc javaClassDesc

	typeCode, err := sr.ReadU8()
	if err != nil {
		return desc, err
	}
	if typeCode == javaTcNull {
		return desc, nil
	}
	if typeCode != javaTcClassDesc {
		return desc, format.ErrDatJClassType
	}

	name, err := readJavaUTF(sr)
	if err != nil {
		return desc, err
	}
	desc.Name = name

	if err := sr.Skip(9); err != nil { // 8-byte serialVersionUID, 1-byte flags
		return desc, err
	}

	count, err := sr.ReadU16BE()
	if err != nil {
		return desc, err
	}
	if int(count) > 22 {
		return desc, format.ErrDatJClassFields
	}

	desc.Fields = make([]javaFieldDesc, count)
	for i := range desc.Fields {
		fd, err := readJavaFieldDesc(sr)
		if err != nil {
			return desc, err
		}
		desc.Fields[i] = fd
	}

	annotation, err := sr.ReadU8()
	if err != nil {
		return desc, err
	}
	if annotation != javaTcEndBlockData {
		return desc, format.ErrDatJClassAnnotation
	}

	if _, err := readJavaClassDesc(sr); err != nil { // superclass, discarded
		return desc, err
	}

	return desc, nil
}

// readJavaFieldData reads one field's value according to its descriptor's
// type tag. The "blockMap" object field is the one Object-typed field this
// decoder handles: it is skipped by exploiting fixed byte offsets observed
// in real saves, rather than fully parsing its class graph. Every other
// Object field (e.g. the player) returns at once with zero bytes consumed.
func readJavaFieldData(sr *stream.Reader, fd javaFieldDesc) (datField, error) {
	val := datField{Type: fd.Type}

	switch fd.Type {
	case javaFieldI8, javaFieldBool:
		v, err := sr.ReadU8()
		if err != nil {
			return val, err
		}
		val.I32 = int32(v)

	case javaFieldF32, javaFieldI32:
		v, err := sr.ReadI32BE()
		if err != nil {
			return val, err
		}
		val.I32 = v

	case javaFieldI64:
		if err := sr.Skip(8); err != nil {
			return val, err
		}

	case javaFieldObject:
		if !strings.EqualFold(fd.Name, "blockMap") {
			return val, nil
		}
		if err := skipDatBlockMap(sr); err != nil {
			return val, err
		}

	case javaFieldArray:
		arr, err := readDatArray(sr)
		if err != nil {
			return val, err
		}
		val.Array = arr
	}

	return val, nil
}

// skipDatBlockMap discards the nested blockMap object using the fixed byte
// offsets a real Minecraft Classic server .dat save always has at this
// point in the stream: the object is TC_OBJECT or TC_NULL (WoM saves), and
// if present its payload is 315 bytes, then a u32 BE hash-map entry count,
// then 17 bytes per entry, then a trailing 152 bytes.
func skipDatBlockMap(sr *stream.Reader) error {
	typeCode, err := sr.ReadU8()
	if err != nil {
		return err
	}
	if typeCode == javaTcNull {
		return nil
	}
	if typeCode != javaTcObject {
		return format.ErrDatJObjectType
	}

	if err := sr.Skip(315); err != nil {
		return err
	}

	count, err := sr.ReadU32BE()
	if err != nil {
		return err
	}

	if err := sr.Skip(17 * int(count)); err != nil {
		return err
	}

	return sr.Skip(152)
}

// readDatArray reads an Array field's value: TC_NULL means absent, TC_ARRAY
// is followed by a class descriptor (whose content must be a byte array)
// and then the raw element bytes.
func readDatArray(sr *stream.Reader) ([]byte, error) {
	typeCode, err := sr.ReadU8()
	if err != nil {
		return nil, err
	}
	if typeCode == javaTcNull {
		return nil, nil
	}
	if typeCode != javaTcArray {
		return nil, format.ErrDatJArrayType
	}

	desc, err := readJavaClassDesc(sr)
	if err != nil {
		return nil, err
	}
	if len(desc.Name) < 2 || desc.Name[1] != javaFieldI8 {
		return nil, format.ErrDatJArrayContent
	}

	count, err := sr.ReadU32BE()
	if err != nil {
		return nil, err
	}

	return sr.ReadExact(int(count))
}

// applyDatField maps one decoded, case-insensitively-matched field name
// onto the World being built. The save's "height"/"depth" field names are
// swapped relative to World's own Height/Length axes, matching the
// original naming mismatch exactly: the save's "height" is the
// horizontal Z extent and its "depth" is the vertical Y extent.
func applyDatField(w *world.World, name string, val datField) {
	switch {
	case strings.EqualFold(name, "width"):
		w.Width = uint16(val.I32) //nolint:gosec
	case strings.EqualFold(name, "height"):
		w.Length = uint16(val.I32) //nolint:gosec
	case strings.EqualFold(name, "depth"):
		w.Height = uint16(val.I32) //nolint:gosec
	case strings.EqualFold(name, "blocks"):
		w.Blocks = val.Array
	case strings.EqualFold(name, "xSpawn"):
		w.Spawn.X = float32(val.I32)
	case strings.EqualFold(name, "ySpawn"):
		w.Spawn.Y = float32(val.I32)
	case strings.EqualFold(name, "zSpawn"):
		w.Spawn.Z = float32(val.I32)
	}
}
