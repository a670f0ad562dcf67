package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfc-emu/ricoh5a22/bus"
)

func newTestCPU(t *testing.T) (*CPU, *bus.BusA, []byte) {
	t.Helper()
	ram := make([]byte, 1<<24)
	b := bus.New(ram)
	c := New(b)
	return c, b, ram
}

func TestResetSequence(t *testing.T) {
	c, _, ram := newTestCPU(t)
	ram[0xFFFC] = 0x00
	ram[0xFFFD] = 0x80

	var trace []CycleEvent
	c.SetObserver(func(ev CycleEvent) { trace = append(trace, ev) })
	c.Step()

	assert.Equal(t, uint16(0x8000), c.Registers().PC)
	assert.Equal(t, uint8(0x00), c.Registers().PBR)
	assert.True(t, c.Emulation())
	assert.NotZero(t, c.Registers().P&FlagI)
	assert.Zero(t, c.Registers().P&FlagD)
	assert.Equal(t, uint16(0x01FD), c.Registers().S)
	for _, ev := range trace {
		assert.NotEqual(t, CycleWrite, ev.Tag, "RESET pushes must be aborted (read-only)")
	}
}

func TestLDAImmediateEmulation(t *testing.T) {
	c, _, ram := newTestCPU(t)
	ram[0xFFFC], ram[0xFFFD] = 0x00, 0x80
	c.Step() // consume RESET

	ram[0x8000] = 0xA9
	ram[0x8001] = 0x42

	before := c.Clock().CPUCycles()
	c.Step()

	r := c.Registers()
	assert.Equal(t, uint8(0x42), r.AL())
	assert.Equal(t, uint16(0x8002), r.PC)
	assert.Zero(t, r.P&FlagZ)
	assert.Zero(t, r.P&FlagN)
	assert.Equal(t, uint64(2), c.Clock().CPUCycles()-before)
}

func TestORAIndirectXBank0Passthrough(t *testing.T) {
	c, _, ram := newTestCPU(t)
	ram[0xFFFC], ram[0xFFFD] = 0x00, 0x80
	c.Step()

	r := c.Registers()
	r.D = 0x0000
	r.X = 0x0004
	r.PC = 0x8000
	r.PBR = 0x00
	r.P |= FlagM
	r.A = 0x000A
	c.SetRegisters(r)

	ram[0x8000] = 0x01
	ram[0x8001] = 0x0C
	ram[0x0010] = 0x20
	ram[0x0011] = 0x30
	ram[0x3020] = 0x55

	before := c.Clock().CPUCycles()
	c.Step()

	got := c.Registers()
	assert.Equal(t, uint8(0x5F), got.AL())
	assert.Zero(t, got.P&FlagZ)
	assert.Zero(t, got.P&FlagN)
	assert.Equal(t, uint64(6), c.Clock().CPUCycles()-before)
}

func TestIRQTakenInNativeMode(t *testing.T) {
	c, _, ram := newTestCPU(t)
	ram[0xFFFC], ram[0xFFFD] = 0x00, 0x80
	c.Step()

	c.SetEmulation(false)
	r := c.Registers()
	r.P &^= FlagI
	r.PC = 0x8000
	r.PBR = 0x12
	c.SetRegisters(r)
	ram[0xFFEE], ram[0xFFEF] = 0x34, 0x12
	ram[0x8000] = 0xEA // NOP, never fetched: IRQ wins before opcode dispatch

	c.SetIRQLine(true)
	c.Step()

	got := c.Registers()
	assert.Equal(t, uint16(0x1234), got.PC)
	assert.Equal(t, uint8(0x00), got.PBR)
	assert.NotZero(t, got.P&FlagI)
	assert.Zero(t, got.P&FlagD)
}

func TestXCEIdempotent(t *testing.T) {
	c, _, ram := newTestCPU(t)
	ram[0xFFFC], ram[0xFFFD] = 0x00, 0x80
	c.Step()

	startE := c.Emulation()
	ram[0x8000], ram[0x8001] = 0xFB, 0xFB // XCE; XCE
	r := c.Registers()
	r.PC = 0x8000
	c.SetRegisters(r)

	c.Step()
	c.Step()
	assert.Equal(t, startE, c.Emulation())
}

func TestREPSEPRoundTrip(t *testing.T) {
	c, _, ram := newTestCPU(t)
	ram[0xFFFC], ram[0xFFFD] = 0x00, 0x80
	c.Step()
	c.SetEmulation(false)

	r := c.Registers()
	r.PC = 0x8000
	before := r.P
	c.SetRegisters(r)

	ram[0x8000], ram[0x8001] = 0xC2, 0x30 // REP #$30
	ram[0x8002], ram[0x8003] = 0xE2, 0x30 // SEP #$30
	c.Step()
	c.Step()

	assert.Equal(t, before, c.Registers().P)
}

func TestBlockMoveMVN(t *testing.T) {
	c, _, ram := newTestCPU(t)
	ram[0xFFFC], ram[0xFFFD] = 0x00, 0x80
	c.Step()
	c.SetEmulation(false)

	r := c.Registers()
	r.PC = 0x8000
	r.A = 0x0002 // 3 bytes
	r.X = 0x1000
	r.Y = 0x2000
	c.SetRegisters(r)

	ram[0x8000] = 0x54 // MVN dst,src
	ram[0x8001] = 0x01 // dst bank
	ram[0x8002] = 0x00 // src bank
	ram[0x001000] = 0xAA
	ram[0x001001] = 0xBB
	ram[0x001002] = 0xCC

	c.Step()

	require.Equal(t, uint8(0xAA), ram[0x012000])
	require.Equal(t, uint8(0xBB), ram[0x012001])
	require.Equal(t, uint8(0xCC), ram[0x012002])
	got := c.Registers()
	assert.Equal(t, uint16(0xFFFF), got.A)
	assert.Equal(t, uint8(0x01), got.DBR)
}
