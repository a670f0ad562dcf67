package cpu

// Registers holds the programmer-visible state of the Ricoh 5A22: the
// 65C816 register file. A, X, Y, S, D, and PC are each addressable as a
// 16-bit word or as independent high/low bytes.
type Registers struct {
	A   uint16
	X   uint16
	Y   uint16
	S   uint16
	D   uint16
	DBR uint8
	PBR uint8
	PC  uint16
	P   uint8
}

// AL and AH are the low and high bytes of the accumulator. AH is commonly
// called "B" in 65816 documentation (not to be confused with the break
// flag, also called B).
func (r *Registers) AL() uint8 { return uint8(r.A) }
func (r *Registers) AH() uint8 { return uint8(r.A >> 8) }

func (r *Registers) SetAL(v uint8) { r.A = r.A&0xFF00 | uint16(v) }
func (r *Registers) SetAH(v uint8) { r.A = r.A&0x00FF | uint16(v)<<8 }

func (r *Registers) XL() uint8 { return uint8(r.X) }
func (r *Registers) XH() uint8 { return uint8(r.X >> 8) }
func (r *Registers) YL() uint8 { return uint8(r.Y) }
func (r *Registers) YH() uint8 { return uint8(r.Y >> 8) }

func (r *Registers) SL() uint8 { return uint8(r.S) }
func (r *Registers) SH() uint8 { return uint8(r.S >> 8) }

func (r *Registers) DL() uint8 { return uint8(r.D) }
func (r *Registers) DH() uint8 { return uint8(r.D >> 8) }
