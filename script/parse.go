package script

import (
	"github.com/adventcore/advent/internal/byteio"
	"github.com/adventcore/advent/internal/errs"
	"github.com/rs/zerolog/log"
)

const cursorRecordSize = 176

// reservedWords is the count of unidentified u32s the original engine
// skips between the area table and the script table; it reads them but
// never interprets them.
const reservedWords = 0xf

func readStringArray(r *byteio.Reader) ([]string, error) {
	count, err := r.ReadU32LE()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		s, err := r.ReadPascalString()
		if err != nil {
			return nil, errs.Wrapf(err, "reading string %d of %d", i, count)
		}
		out = append(out, s)
	}
	return out, nil
}

// Parse decodes a complete script resource, given the raw resource bytes
// and the resource's own name (needed because opcode 0x0c's meaning
// depends on whether the enclosing script is named "ENTRY").
func Parse(data []byte, name string) (*Listing, error) {
	r := byteio.NewReader(data, "script:"+name)

	scriptType, err := r.ReadU32LE()
	if err != nil {
		return nil, errs.Wrapf(err, "reading script_type")
	}

	listing := &Listing{Name: name}

	if listing.Strings, err = readStringArray(r); err != nil {
		return nil, errs.Wrapf(err, "reading strings array")
	}
	if listing.Palettes, err = readStringArray(r); err != nil {
		return nil, errs.Wrapf(err, "reading palettes array")
	}
	if listing.Exits, err = readStringArray(r); err != nil {
		return nil, errs.Wrapf(err, "reading exits array")
	}
	if listing.Animations, err = readStringArray(r); err != nil {
		return nil, errs.Wrapf(err, "reading animations array")
	}
	if listing.Smc, err = readStringArray(r); err != nil {
		return nil, errs.Wrapf(err, "reading smc array")
	}
	if listing.Themes, err = readStringArray(r); err != nil {
		return nil, errs.Wrapf(err, "reading themes array")
	}
	if listing.Sounds, err = readStringArray(r); err != nil {
		return nil, errs.Wrapf(err, "reading sounds array")
	}

	cursorCount, err := r.ReadU32LE()
	if err != nil {
		return nil, errs.Wrapf(err, "reading cursor count")
	}
	listing.CursorCount = cursorCount
	if err := r.Skip(int(cursorCount) * cursorRecordSize); err != nil {
		return nil, errs.Wrapf(err, "skipping %d cursor records", cursorCount)
	}

	areaCount, err := r.ReadU32LE()
	if err != nil {
		return nil, errs.Wrapf(err, "reading area count")
	}
	for i := uint32(0); i < areaCount; i++ {
		var a Area
		if a.X0, err = r.ReadU32LE(); err != nil {
			return nil, err
		}
		if a.Y0, err = r.ReadU32LE(); err != nil {
			return nil, err
		}
		if a.X1, err = r.ReadU32LE(); err != nil {
			return nil, err
		}
		if a.Y1, err = r.ReadU32LE(); err != nil {
			return nil, err
		}
		if a.Flags, err = r.ReadU32LE(); err != nil {
			return nil, err
		}
		listing.Areas = append(listing.Areas, a)
	}

	if err := r.Skip(reservedWords * 4); err != nil {
		return nil, errs.Wrapf(err, "skipping reserved block")
	}

	scriptCount, err := r.ReadU32LE()
	if err != nil {
		return nil, errs.Wrapf(err, "reading script count")
	}

	missingSeen := make(map[uint32]bool)

	for i := uint32(0); i < scriptCount; i++ {
		var commandCount uint32
		if scriptType == 1 {
			b, err := r.ReadByte()
			if err != nil {
				return nil, errs.Wrapf(err, "reading command count of script %d", i)
			}
			commandCount = uint32(b)
		} else {
			commandCount, err = r.ReadU32LE()
			if err != nil {
				return nil, errs.Wrapf(err, "reading command count of script %d", i)
			}
		}

		sl := ScriptListing{Index: int(i)}
		for j := uint32(0); j < commandCount; j++ {
			opcode, err := r.ReadU32LE()
			if err != nil {
				return nil, errs.Wrapf(err, "reading opcode of script %d command %d", i, j)
			}
			a1, err := r.ReadU32LE()
			if err != nil {
				return nil, err
			}
			a2, err := r.ReadU32LE()
			if err != nil {
				return nil, err
			}
			a3, err := r.ReadU32LE()
			if err != nil {
				return nil, err
			}

			line, missing := renderInstruction(listing, j, opcode, a1, a2, a3)
			sl.Lines = append(sl.Lines, line)
			if missing && !missingSeen[opcode] {
				missingSeen[opcode] = true
				listing.MissingOpcodes = append(listing.MissingOpcodes, opcode)
			}
		}
		listing.Scripts = append(listing.Scripts, sl)
	}

	log.Debug().Str("name", name).Uint32("script_type", scriptType).
		Uint32("script_count", scriptCount).Msg("parsed script resource")
	return listing, nil
}
