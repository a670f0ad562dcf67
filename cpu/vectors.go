package cpu

// Interrupt/reset vector addresses, all in bank 0. The native and
// emulation-mode vector sets differ: emulation mode folds BRK and IRQ
// onto the single 6502-compatible IRQ/BRK vector, and COP/ABORT/NMI have
// their own emulation-mode slots at $FFF4-$FFFA.
const (
	vecCOPNative   uint16 = 0xFFE4
	vecBRKNative   uint16 = 0xFFE6
	vecABORTNative uint16 = 0xFFE8
	vecNMINative   uint16 = 0xFFEA
	vecRESETVector uint16 = 0xFFFC
	vecIRQNative   uint16 = 0xFFEE

	vecCOPEmulation   uint16 = 0xFFF4
	vecABORTEmulation uint16 = 0xFFF8
	vecNMIEmulation   uint16 = 0xFFFA
	vecIRQBRKEmulation uint16 = 0xFFFE
)

// interruptCause enumerates the reasons an interrupt sequence can be
// entered. Priority among simultaneously pending causes is
// RESET > ABORT > NMI > IRQ > software (BRK/COP). ABORT is raised by
// Bus A accessors/mappers through CPU.AssertAbort and latched until
// serviced, same as RESET.
type interruptCause uint8

const (
	causeNone interruptCause = iota
	causeReset
	causeNMI
	causeIRQ
	causeAbort
	causeBRK
	causeCOP
)

// selectVector chooses the interrupt vector for the given cause and
// emulation-mode flag, and whether the B flag should accompany the
// pushed status byte.
func selectVector(cause interruptCause, emulation bool) (vector uint16, pushB bool) {
	switch cause {
	case causeReset:
		return vecRESETVector, false
	case causeNMI:
		if emulation {
			return vecNMIEmulation, false
		}
		return vecNMINative, false
	case causeIRQ:
		if emulation {
			return vecIRQBRKEmulation, false
		}
		return vecIRQNative, false
	case causeAbort:
		if emulation {
			return vecABORTEmulation, false
		}
		return vecABORTNative, false
	case causeBRK:
		if emulation {
			return vecIRQBRKEmulation, true
		}
		return vecBRKNative, false
	case causeCOP:
		if emulation {
			return vecCOPEmulation, false
		}
		return vecCOPNative, false
	}
	return vecRESETVector, false
}
