package script

import "fmt"

func nameAt(names []string, idx uint32) string {
	if int(idx) < 0 || int(idx) >= len(names) {
		return ""
	}
	return names[idx]
}

// renderInstruction renders one command into its symbolic listing line,
// reproducing the original engine's full opcode switch (loadScript) —
// including its documented oddities: opcode 0x0c is special-cased for a
// script resource literally named "ENTRY", and 0x196 prints its
// arguments in swapped order. Unrecognized opcodes fall back to a raw
// hex trace and are reported as missing via the second return value.
func renderInstruction(l *Listing, j uint32, opcode, a1, a2, a3 uint32) (line string, missing bool) {
	switch opcode {
	case 0x03:
		return fmt.Sprintf("0x%04x: exit_value = exit_table_values[%d] /* %s */", j, a1, nameAt(l.Exits, a1)), false
	case 0x04:
		return fmt.Sprintf("0x%04x: vars[0x%x] = 0x%08x", j, a1, a2), false
	case 0x05:
		return fmt.Sprintf("0x%04x: vars[0x%x]++", j, a1), false
	case 0x06:
		return fmt.Sprintf("0x%04x: vars[0x%x]--", j, a1), false
	case 0x07:
		return fmt.Sprintf("0x%04x: disable_cursor_by_field_0x14(%d)", j, a1), false
	case 0x08:
		return fmt.Sprintf("0x%04x: enable_cursor_by_field_0x14(%d)", j, a1), false
	case 0x09:
		return fmt.Sprintf("0x%04x: if vars[0x%x] > 0x%x {", j, a1, a2), false
	case 0x0a:
		return fmt.Sprintf("0x%04x: if vars[0x%x] == 0x%x {", j, a1, a2), false
	case 0x0b:
		return fmt.Sprintf("0x%04x: if vars[0x%x] < 0x%x {", j, a1, a2), false
	case 0x0e:
		return fmt.Sprintf("0x%04x: if vars[0x%x] != 0x%x {", j, a1, a2), false
	case 0x0c:
		if l.Name == "ENTRY" {
			return fmt.Sprintf("0x%04x: /* 0xc in ENTRY script, code ends */", j), false
		}
		return fmt.Sprintf("0x%04x: (something with inventory)", j), false
	case 0x0f:
		return fmt.Sprintf("0x%04x: }", j), false
	case 0x10:
		return fmt.Sprintf("0x%04x: } else {", j), false
	case 0x13:
		return fmt.Sprintf("0x%04x: ani_rem_onscreen(0x%x)", j, a1), false
	case 0x14:
		return fmt.Sprintf("0x%04x: thm_play(0x%x)", j, a1), false
	case 0x15:
		return fmt.Sprintf("0x%04x: sfx_play(0x%x)", j, a1), false
	case 0x16, 0x17:
		return fmt.Sprintf("0x%04x: nop", j), false
	case 0x19:
		return fmt.Sprintf("0x%04x: ani_add_by_num(0x%x) /* %s */", j, a1, nameAt(l.Animations, a1)), false
	case 0x49:
		return fmt.Sprintf("0x%04x: wait_frames_no_async()", j), false
	case 0x65:
		return fmt.Sprintf("0x%04x: call_script %d", j, a1), false
	case 0x70:
		return fmt.Sprintf("0x%04x: exit()", j), false
	case 0x71:
		return fmt.Sprintf("0x%04x: intro_play(0x%x, 0x%x, 0x%x) /* %s */", j, a1, a2, a3, nameAt(l.Smc, a1)), false
	case 0x77, 0x78:
		return fmt.Sprintf("0x%04x: scm_add(0x%x) /* %q */", j, a1, nameAt(l.Smc, a1)), false
	case 0xcd:
		return fmt.Sprintf("0x%04x: nwspeak(0x%x)", j, a1), false
	case 0xff, 0x100:
		return fmt.Sprintf("0x%04x: nop", j), false
	case 0x12f:
		return fmt.Sprintf("0x%04x: refpal()", j), false
	case 0x13c:
		return fmt.Sprintf("0x%04x: ani_set_frame(0x%x, %d) /* %s */", j, a1, a2, nameAt(l.Animations, a1)), false
	case 0x16c:
		return fmt.Sprintf("0x%04x: thm_event(0x%x)", j, a1), false
	case 0x170:
		return fmt.Sprintf("0x%04x: fx_setvol(0x%x)", j, a1), false
	case 0x171:
		return fmt.Sprintf("0x%04x: si_snd_setvol(0x%x)", j, a1), false
	case 0x172:
		return fmt.Sprintf("0x%04x: si_spk_setvol(0x%x)", j, a1), false
	case 0x17a:
		return fmt.Sprintf("0x%04x: spk_stop()", j), false
	case 0x191:
		return fmt.Sprintf("0x%04x: ani_suspend(0x%x)", j, a1), false
	case 0x195:
		return fmt.Sprintf("0x%04x: ani_clear_suspended(0x%x)", j, a1), false
	case 0x196:
		// Flipped on purpose: the original prints arg2 before arg1.
		return fmt.Sprintf("0x%04x: async_add_timer(0x%x, 0x%x)", j, a2, a1), false
	case 0x84c:
		return fmt.Sprintf("0x%04x: vars[0x%x] = si_get_vol()", j, a1), false
	case 0x850:
		return fmt.Sprintf("0x%04x: vars[0x%x] = txt_get_speed()", j, a1), false
	case 0x852:
		return fmt.Sprintf("0x%04x: txt_set_on(0x%x)", j, a1), false
	case 0x855:
		return fmt.Sprintf("0x%04x: vars[0x%x] = thunk_FUN_0047d7e0()", j, a1), false
	case 0x856:
		return fmt.Sprintf("0x%04x: vars[0x%x] = txt_get_on()", j, a1), false
	case 0x857:
		return fmt.Sprintf("0x%04x: vars[0x%x] = (DAT_0062b284 == 0)", j, a1), false
	case 0x858:
		return fmt.Sprintf("0x%04x: vars[0x%x] = pal_get_brightness()", j, a1), false
	case 0x901:
		return fmt.Sprintf("0x%04x: gv_addbutton(%d, 0)", j, a1), false
	case 0x902:
		return fmt.Sprintf("0x%04x: gv_update_buttons()", j), false
	case 0x903:
		return fmt.Sprintf("0x%04x: gv_addbutton(-1, %d)", j, a2), false
	case 0x905:
		return fmt.Sprintf("0x%04x: sav_select_load()", j), false
	case 0x1004:
		return fmt.Sprintf("0x%04x: initialize_script()", j), false
	case 0x13ba:
		return fmt.Sprintf("0x%04x: ani_add_by_num(num=0x%x, prio=0x%x) /* %s */", j, a1, a2, nameAt(l.Animations, a1)), false
	case 0x1838:
		return fmt.Sprintf("0x%04x: gran_diary_init()", j), false
	default:
		return fmt.Sprintf("0x%04x: 0x%08x 0x%08x 0x%08x 0x%08x", j, opcode, a1, a2, a3), true
	}
}
