package picture1

import (
	"testing"

	"github.com/adventcore/advent/surface"
	"github.com/stretchr/testify/require"
)

// Scenario C: a single raw line then a terminating tail marker.
func TestDecodeRawLine(t *testing.T) {
	buf := []byte{
		0x01, 0x02, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00,
		0x00, 0xAA, 0xBB,
		0x00, 0x00, 0x00, 0x00,
	}
	dst := surface.New(4, 4)
	consumed, err := Decode(buf, dst, 0, 0)
	require.NoError(t, err)
	require.Equal(t, len(buf), consumed)
	require.Equal(t, byte(0xAA), dst.At(0, 0))
	require.Equal(t, byte(0xBB), dst.At(1, 0))
}

// Scenario D: an RLE run filling the row with one color.
func TestDecodeRLELine(t *testing.T) {
	buf := []byte{
		0x01, 0x02, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00,
		0x01, 0x03, 0xAA, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	dst := surface.New(4, 4)
	_, err := Decode(buf, dst, 0, 0)
	require.NoError(t, err)
	require.Equal(t, byte(0xAA), dst.At(0, 0))
	require.Equal(t, byte(0xAA), dst.At(1, 0))
	require.Equal(t, byte(0xAA), dst.At(2, 0))
	require.Equal(t, byte(0x00), dst.At(3, 0))
}

func TestDecodeLineTypeSkip(t *testing.T) {
	buf := []byte{
		0x01, 0x04, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00,
		0x02, 0x02, 0xFE, 0xAA, 0xBB, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	dst := surface.New(4, 4)
	_, err := Decode(buf, dst, 0, 0)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), dst.At(0, 0))
	require.Equal(t, byte(0x00), dst.At(1, 0))
	require.Equal(t, byte(0xAA), dst.At(2, 0))
	require.Equal(t, byte(0xBB), dst.At(3, 0))
}

func TestDecodeNoOpLine(t *testing.T) {
	buf := []byte{
		0x01, 0x02, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00,
		0x04,
		0x00, 0x00, 0x00, 0x00,
	}
	dst := surface.New(4, 4)
	require.NoError(t, dst.Set(0, 0, 0x7F))
	_, err := Decode(buf, dst, 0, 0)
	require.NoError(t, err)
	require.Equal(t, byte(0x7F), dst.At(0, 0))
}

func TestDecodeEndsOnInputExhaustionAtSlabBoundary(t *testing.T) {
	buf := []byte{
		0x01, 0x02, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00,
		0x00, 0xAA, 0xBB,
	}
	dst := surface.New(4, 4)
	consumed, err := Decode(buf, dst, 0, 0)
	require.NoError(t, err)
	require.Equal(t, len(buf), consumed)
}
