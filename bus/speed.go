package bus

// Master-clock divisors. These are dimensionless cycle counts (the number
// of master clocks an access costs), not durations, so the NTSC and PAL
// profiles share the same three constants even though the two consoles'
// master clocks run at different frequencies.
const (
	NTSCFast  = 6
	NTSCSlow  = 8
	NTSCXSlow = 12

	PALFast  = NTSCFast
	PALSlow  = NTSCSlow
	PALXSlow = NTSCXSlow
)

// SetPageSpeed overrides one 256-byte page's divisor nibbles directly.
// speed1 of 0 means "use speed0 for both MEMSEL states".
func (b *BusA) SetPageSpeed(page24 uint16, speed0, speed1 uint8) {
	if speed1 == 0 {
		speed1 = speed0
	}
	b.speeds[page24] = (speed1&0x0F)<<4 | (speed0 & 0x0F)
}

// BuildSpeedTable fills the entire (bank,page) speed table per the SNES
// memory map: in banks $00-$3F and $80-$BF, pages $20-$3F and $42-$5F
// are fast and pages $40-$41 are xslow; the upper half of banks $80-$BF
// and all of banks $C0-$FF follow FastROM (MEMSEL) gating; every other
// page, WRAM and its low-page mirrors included, is slow.
func (b *BusA) BuildSpeedTable(fast, slow, xslow uint8) {
	for bank := 0; bank < 0x100; bank++ {
		for page := 0; page < 0x100; page++ {
			idx := uint16(bank)<<8 | uint16(page)
			b.speeds[idx] = (slow&0x0F)<<4 | (slow & 0x0F)
		}
	}

	loHiBankGroup := func(baseBank uint8) {
		for off := 0; off < 0x40; off++ {
			bank := baseBank + uint8(off)

			for page := 0x20; page <= 0x3F; page++ {
				b.setPage(bank, uint8(page), fast, fast)
			}

			b.setPage(bank, 0x40, xslow, xslow)
			b.setPage(bank, 0x41, xslow, xslow)

			for page := 0x42; page <= 0x5F; page++ {
				b.setPage(bank, uint8(page), fast, fast)
			}

			if baseBank == 0x80 {
				for page := 0x80; page <= 0xFF; page++ {
					b.setPage(bank, uint8(page), slow, fast)
				}
			}
		}
	}
	loHiBankGroup(0x00)
	loHiBankGroup(0x80)

	// Banks $40-$7D and $7E-$7F (WRAM): all slow, already the default.

	for bank := 0xC0; bank <= 0xFF; bank++ {
		for page := 0x00; page <= 0xFF; page++ {
			b.setPage(uint8(bank), uint8(page), slow, fast)
		}
	}
}

func (b *BusA) setPage(bank, page uint8, speed0, speed1 uint8) {
	idx := uint16(bank)<<8 | uint16(page)
	b.SetPageSpeed(idx, speed0, speed1)
}
