package palette

import (
	"testing"

	"github.com/adventcore/advent/internal/errs"
	"github.com/stretchr/testify/require"
)

// Scenario B from the resource pipeline's end-to-end test set.
func TestDecodeChunkScenarioB(t *testing.T) {
	var p Palette
	chunk := []byte{0x00, 0x01, 0x3F, 0x00, 0x00, 0x00, 0x3F, 0x00}
	require.NoError(t, DecodeChunk(&p, chunk))
	require.Equal(t, [3]byte{0xFC, 0x00, 0x00}, p[0])
	require.Equal(t, [3]byte{0x00, 0xFC, 0x00}, p[1])
	require.Equal(t, [3]byte{0, 0, 0}, p[2])
}

func TestDecodeChunkPreservesOutsideRange(t *testing.T) {
	var p Palette
	p[5] = [3]byte{9, 9, 9}
	chunk := []byte{0x00, 0x00, 0x10, 0x10, 0x10}
	require.NoError(t, DecodeChunk(&p, chunk))
	require.Equal(t, [3]byte{9, 9, 9}, p[5])
}

func TestDecodeChunkTruncated(t *testing.T) {
	var p Palette
	err := DecodeChunk(&p, []byte{0x00, 0x05, 0x01})
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.TruncatedInput))
}

func TestDecodeStandaloneWrongLength(t *testing.T) {
	_, err := DecodeStandalone(make([]byte, 100))
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.Corrupt))
}

func TestDecodeStandaloneOK(t *testing.T) {
	data := make([]byte, 786)
	data[18] = 0x3F // R of entry 0
	data[19] = 0x10 // G of entry 0
	data[20] = 0x00 // B of entry 0
	p, err := DecodeStandalone(data)
	require.NoError(t, err)
	require.Equal(t, [3]byte{0xFC, 0x40, 0x00}, p[0])
}
