package script

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func u32le(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// Scenario G from the resource pipeline's end-to-end test set.
func TestParseScenarioG(t *testing.T) {
	var data []byte
	data = append(data, u32le(2)...) // script_type
	for i := 0; i < 7; i++ {
		data = append(data, u32le(0)...) // seven empty string arrays
	}
	data = append(data, u32le(0)...) // cursor count
	data = append(data, u32le(0)...) // area count
	data = append(data, make([]byte, reservedWords*4)...)
	data = append(data, u32le(1)...) // script count
	data = append(data, u32le(2)...) // command count

	// vars[0x5] = 0xdead
	data = append(data, u32le(0x04)...)
	data = append(data, u32le(0x05)...)
	data = append(data, u32le(0xdead)...)
	data = append(data, u32le(0)...)

	// nop
	data = append(data, u32le(0xff)...)
	data = append(data, u32le(0)...)
	data = append(data, u32le(0)...)
	data = append(data, u32le(0)...)

	listing, err := Parse(data, "MENU")
	require.NoError(t, err)
	require.Len(t, listing.Scripts, 1)
	require.Equal(t, []string{
		"0x0000: vars[0x5] = 0x0000dead",
		"0x0001: nop",
	}, listing.Scripts[0].Lines)
	require.Empty(t, listing.MissingOpcodes)
}

func TestParseCollectsMissingOpcodes(t *testing.T) {
	var data []byte
	data = append(data, u32le(2)...)
	for i := 0; i < 7; i++ {
		data = append(data, u32le(0)...)
	}
	data = append(data, u32le(0)...)
	data = append(data, u32le(0)...)
	data = append(data, make([]byte, reservedWords*4)...)
	data = append(data, u32le(1)...)
	data = append(data, u32le(1)...)
	data = append(data, u32le(0x2222)...) // unrecognized opcode
	data = append(data, u32le(0)...)
	data = append(data, u32le(0)...)
	data = append(data, u32le(0)...)

	listing, err := Parse(data, "VVI2")
	require.NoError(t, err)
	require.Equal(t, []uint32{0x2222}, listing.MissingOpcodes)
}

func TestOpcode0x0cEntrySpecialCase(t *testing.T) {
	entry := &Listing{Name: "ENTRY"}
	line, missing := renderInstruction(entry, 0, 0x0c, 0, 0, 0)
	require.False(t, missing)
	require.Contains(t, line, "code ends")

	other := &Listing{Name: "MENU"}
	line, _ = renderInstruction(other, 0, 0x0c, 0, 0, 0)
	require.Contains(t, line, "inventory")
}

func TestOpcode0x196SwapsArgs(t *testing.T) {
	l := &Listing{Name: "MENU"}
	line, _ := renderInstruction(l, 0, 0x196, 0x1, 0x2, 0)
	require.Equal(t, "0x0000: async_add_timer(0x2, 0x1)", line)
}
