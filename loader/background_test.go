package loader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func flatPicture1NoOp(width, height int) []byte {
	buf := []byte{0x00, byte(width), byte(width >> 8), 0, 0, 0, 0, byte(height), byte(height >> 8)}
	for i := 0; i < height; i++ {
		buf = append(buf, 0x04) // no-op line
	}
	buf = append(buf, 0, 0, 0, 0) // tail: skip_y=0, new_height=0 -> stop
	return buf
}

func flatPalette() []byte {
	return make([]byte, 786)
}

func TestDecodeBackgroundHappyPath(t *testing.T) {
	header := []byte{0x10, 0x01, 0, 0, 0, 0, 0, 0, 0x01, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	data := append(header, flatPicture1NoOp(4, 1)...)

	bg, err := DecodeBackground(data, flatPalette())
	require.NoError(t, err)
	require.Equal(t, 640, bg.Surface.Width)
	require.Equal(t, 480, bg.Surface.Height)
	require.NotNil(t, bg.Palette)
}

func TestDecodeBackgroundBadHeader(t *testing.T) {
	header := []byte{0x11, 0x01, 0, 0, 0, 0, 0, 0, 0x01, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	_, err := DecodeBackground(header, flatPalette())
	require.Error(t, err)
}

func TestDecodeBackgroundTruncatedHeader(t *testing.T) {
	_, err := DecodeBackground([]byte{0x10, 0x01}, flatPalette())
	require.Error(t, err)
}
