package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassthroughReadWrite(t *testing.T) {
	ram := make([]byte, 0x1000000)
	ram[0x7E1234] = 0x42
	b := New(ram)

	val, _ := b.Read(0x1234, 0x7E)
	assert.Equal(t, uint8(0x42), val)

	b.Write(0x1234, 0x7E, 0x99)
	assert.Equal(t, uint8(0x99), ram[0x7E1234])
}

func TestOpenBusLatch(t *testing.T) {
	ram := make([]byte, 0x1000000)
	b := New(ram)
	b.SetDataBus(0xA0)

	b.InstallAccessor(0x0021,
		func(p Params) (uint8, uint8) { return 0x12, 0x0F },
		nil, nil, nil, nil, nil)

	got, _ := b.Read(0x2100, 0x00)
	assert.Equal(t, uint8(0xA2), got)
	assert.Equal(t, uint8(0xA2), b.DataBus())
}

func TestOpenBusLatchOnWrite(t *testing.T) {
	ram := make([]byte, 0x1000000)
	b := New(ram)
	b.SetDataBus(0x00)

	b.Write(0x1234, 0x7E, 0x77)
	assert.Equal(t, uint8(0x77), b.DataBus())
}

func TestFastROMToggle(t *testing.T) {
	ram := make([]byte, 0x1000000)
	b := New(ram)

	b.SetMemSel(false)
	_, speed := b.Read(0x8000, 0x80)
	assert.Equal(t, uint8(NTSCSlow), speed)

	b.SetMemSel(true)
	_, speed = b.Read(0x8000, 0x80)
	assert.Equal(t, uint8(NTSCFast), speed)
}

func TestSpeedTableRegions(t *testing.T) {
	ram := make([]byte, 0x1000000)
	b := New(ram)

	cases := []struct {
		name  string
		bank  uint8
		addr  uint16
		want  uint8
	}{
		{"wram mirror bank 0", 0x00, 0x0000, NTSCSlow},
		{"ppu regs fast", 0x00, 0x2100, NTSCFast},
		{"dma regs xslow", 0x00, 0x4000, NTSCXSlow},
		{"joypad regs xslow", 0x00, 0x4100, NTSCXSlow},
		{"expansion fast", 0x00, 0x4200, NTSCFast},
		{"lower rom slow", 0x00, 0x8000, NTSCSlow},
		{"wram bank 7e slow", 0x7E, 0x0000, NTSCSlow},
		{"mirror bank c0 slow rom region", 0xC0, 0x8000, NTSCSlow},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, speed := b.Read(c.addr, c.bank)
			assert.Equal(t, c.want, speed, "%s", c.name)
		})
	}

	b.SetMemSel(true)
	_, speed := b.Read(0x8000, 0xC0)
	assert.Equal(t, uint8(NTSCFast), speed, "bank c0 fastrom gated")
}

func TestSetPageSpeedOverride(t *testing.T) {
	ram := make([]byte, 0x1000000)
	b := New(ram)
	b.SetPageSpeed(0x0021, 4, 2)

	b.SetMemSel(false)
	_, speed := b.Read(0x2100, 0x00)
	assert.Equal(t, uint8(4), speed)

	b.SetMemSel(true)
	_, speed = b.Read(0x2100, 0x00)
	assert.Equal(t, uint8(2), speed)
}

func TestDebugAccessHasNoSideEffects(t *testing.T) {
	ram := make([]byte, 0x1000000)
	b := New(ram)
	b.SetDataBus(0x55)

	b.DebugRead(0x1234, 0x7E)
	assert.Equal(t, uint8(0x55), b.DataBus(), "debug read must not touch the latch")

	b.DebugWrite(0x1234, 0x7E, 0xAB)
	assert.Equal(t, uint8(0x55), b.DataBus(), "debug write must not touch the latch")
	assert.Equal(t, uint8(0xAB), ram[0x7E1234])
}

func TestBank0FastPath(t *testing.T) {
	ram := make([]byte, 0x1000000)
	ram[0x0042] = 0x7A
	b := New(ram)

	val, _ := b.ReadBank0(0x0042)
	assert.Equal(t, uint8(0x7A), val)

	b.WriteBank0(0x0042, 0x01)
	assert.Equal(t, uint8(0x01), ram[0x0042])
}
