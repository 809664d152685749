package decode

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/stretchr/testify/require"
)

// javaUTF appends a Java serialization "modified UTF" string: a u16 BE byte
// length followed by the raw bytes.
func javaUTF(buf *bytes.Buffer, s string) {
	buf.Write([]byte{byte(len(s) >> 8), byte(len(s))})
	buf.WriteString(s)
}

// javaI32 appends a big-endian four-byte integer.
func javaI32(buf *bytes.Buffer, v int32) {
	buf.Write([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

// writeJavaFieldDescSimple appends a non-array/object field descriptor: a
// type byte and a name.
func writeJavaFieldDescSimple(buf *bytes.Buffer, typ byte, name string) {
	buf.WriteByte(typ)
	javaUTF(buf, name)
}

// writeJavaArrayFieldDesc appends an Array-typed field descriptor, whose
// name is followed by a discarded class-name reference (here a literal
// TC_STRING class name).
func writeJavaArrayFieldDesc(buf *bytes.Buffer, name, className string) {
	buf.WriteByte(javaFieldArray)
	javaUTF(buf, name)
	buf.WriteByte(javaTcString)
	javaUTF(buf, className)
}

func buildDatStream(t *testing.T, width, height, depth int32, blocks []byte) []byte {
	t.Helper()

	var body bytes.Buffer

	// ten-byte save header.
	body.Write([]byte{0x27, 0x1B, 0xB7, 0x88}) // save identifier
	body.WriteByte(0x02)                       // save version
	body.Write([]byte{0xAC, 0xED})             // java stream magic
	body.Write([]byte{0x00, 0x05})             // java stream version
	body.WriteByte(javaTcObject)

	// root class descriptor.
	body.WriteByte(javaTcClassDesc)
	javaUTF(&body, "com.mojang.minecraft.level.Level")
	body.Write(make([]byte, 9)) // serialVersionUID + flags, ignored

	body.Write([]byte{0x00, 0x04}) // field count: 4
	writeJavaFieldDescSimple(&body, javaFieldI32, "width")
	writeJavaFieldDescSimple(&body, javaFieldI32, "height")
	writeJavaFieldDescSimple(&body, javaFieldI32, "depth")
	writeJavaArrayFieldDesc(&body, "blocks", "[B")

	body.WriteByte(javaTcEndBlockData)
	body.WriteByte(javaTcNull) // no superclass

	// field values, in declaration order.
	javaI32(&body, width)
	javaI32(&body, height)
	javaI32(&body, depth)

	body.WriteByte(javaTcArray)
	body.WriteByte(javaTcClassDesc)
	javaUTF(&body, "[B")
	body.Write(make([]byte, 9))
	body.Write([]byte{0x00, 0x00}) // zero fields on the array's class desc
	body.WriteByte(javaTcEndBlockData)
	body.WriteByte(javaTcNull)
	body.Write([]byte{byte(len(blocks) >> 24), byte(len(blocks) >> 16), byte(len(blocks) >> 8), byte(len(blocks))})
	body.Write(blocks)

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	return gz.Bytes()
}

func TestDat_AxisSwapAndBlocks(t *testing.T) {
	blocks := make([]byte, 24)
	for i := range blocks {
		blocks[i] = byte(i + 1)
	}

	raw := buildDatStream(t, 2, 3, 4, blocks)

	w, err := Dat(bytes.NewReader(raw))
	require.NoError(t, err)

	// the save's "height" field becomes World.Length and its "depth"
	// field becomes World.Height.
	require.EqualValues(t, 2, w.Width)
	require.EqualValues(t, 3, w.Length)
	require.EqualValues(t, 4, w.Height)
	require.Equal(t, blocks, w.Blocks)
}
