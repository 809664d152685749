package nbt

import (
	"bytes"
	"testing"

	"github.com/blockmap/codec/stream"
	"github.com/stretchr/testify/require"
)

func TestWriter_RoundTripsThroughReader(t *testing.T) {
	var buf bytes.Buffer
	nw := NewWriter(&buf)

	nw.OpenDict("Root")
	nw.WriteI8("A", 5)
	nw.WriteI16("B", -7)
	nw.WriteF32("C", 1.5)
	nw.WriteString("D", "Stone")
	nw.WriteI8Array("E", []byte{1, 2, 3})
	nw.End()

	require.NoError(t, nw.Err())

	got := map[string]*Tag{}
	err := Read(stream.New(bytes.NewReader(buf.Bytes())), func(tag *Tag) error {
		got[tag.Name] = tag

		return nil
	})

	require.NoError(t, err)
	require.Equal(t, int8(5), got["A"].I8)
	require.Equal(t, int16(-7), got["B"].I16)
	require.InDelta(t, float32(1.5), got["C"].F32, 1e-9)
	require.Equal(t, "Stone", got["D"].Str)
	require.Equal(t, []byte{1, 2, 3}, got["E"].Bytes())
}

func TestWriter_I8ArrayZeros(t *testing.T) {
	var buf bytes.Buffer
	nw := NewWriter(&buf)
	nw.OpenDict("Root")
	nw.WriteI8ArrayZeros("Data", 20000)
	nw.End()
	require.NoError(t, nw.Err())

	var data []byte
	err := Read(stream.New(bytes.NewReader(buf.Bytes())), func(tag *Tag) error {
		if tag.Name == "Data" {
			data = tag.Bytes()
		}

		return nil
	})

	require.NoError(t, err)
	require.Len(t, data, 20000)
	for _, b := range data {
		require.Zero(t, b)
	}
}

func TestWriter_OpenEmptyList(t *testing.T) {
	var buf bytes.Buffer
	nw := NewWriter(&buf)
	nw.OpenDict("Root")
	nw.OpenEmptyList("Entities", KindDict)
	nw.End()
	require.NoError(t, nw.Err())

	var listTag *Tag
	err := Read(stream.New(bytes.NewReader(buf.Bytes())), func(tag *Tag) error {
		if tag.Name == "Entities" {
			listTag = tag
		}

		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, listTag)
	require.Empty(t, listTag.Children)
}
