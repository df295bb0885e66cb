package byteio

import (
	"testing"

	"github.com/adventcore/advent/internal/errs"
	"github.com/stretchr/testify/require"
)

func TestReadPrimitives(t *testing.T) {
	r := NewReader([]byte{0x2a, 0x01, 0x02, 0x02, 0x03, 0x04, 0x05, 0x04, 'M', 'E', 'N', 'U'}, "test")
	b, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0x2a), b)

	u16, err := r.ReadU16LE()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0201), u16)

	u32, err := r.ReadU32LE()
	require.NoError(t, err)
	require.Equal(t, uint32(0x05040302), u32)

	s, err := r.ReadPascalString()
	require.NoError(t, err)
	require.Equal(t, "MENU", s)
}

func TestTruncatedInput(t *testing.T) {
	r := NewReader([]byte{0x01}, "short")
	_, err := r.ReadU32LE()
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.TruncatedInput))
}

func TestSeekSkipPos(t *testing.T) {
	r := NewReader(make([]byte, 10), "buf")
	require.NoError(t, r.Skip(4))
	require.EqualValues(t, 4, r.Pos())
	require.NoError(t, r.Seek(9))
	require.EqualValues(t, 9, r.Pos())
	require.Error(t, r.Seek(11))
}

func TestHashNameStable(t *testing.T) {
	require.Equal(t, HashName("MENU"), HashName("MENU"))
	require.NotEqual(t, HashName("MENU"), HashName("ENTRY"))
}
