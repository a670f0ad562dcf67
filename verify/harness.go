package verify

import (
	"fmt"

	"github.com/sfc-emu/ricoh5a22/bus"
	"github.com/sfc-emu/ricoh5a22/cpu"
)

// Run executes one test vector end to end: build a fresh passthrough
// bus, seed RAM and registers from tc.Initial, record one Step's cycle
// trace, and diff both registers and trace against tc.Final/tc.Cycles.
func Run(tc Case) Result {
	ram := make([]byte, 1<<24)
	for _, e := range tc.Initial.RAM {
		ram[e.Addr&0xFFFFFF] = e.Value
	}

	b := bus.New(ram)
	c := cpu.New(b)
	c.Step() // consume the power-on RESET sequence before seeding registers
	c.SetEmulation(tc.Initial.E)
	c.SetRegisters(regsFromState(tc.Initial))

	var trace []cpu.CycleEvent
	c.SetObserver(func(ev cpu.CycleEvent) {
		trace = append(trace, ev)
	})
	c.Step()
	c.SetObserver(nil)

	res := Result{Case: tc.Name, Passed: true}

	want := regsFromState(tc.Final)
	got := c.Registers()
	compareRegs(&res, want, got)
	if c.Emulation() != tc.Final.E {
		addMismatch(&res, "E", fmt.Sprintf("%v", tc.Final.E), fmt.Sprintf("%v", c.Emulation()))
	}
	for _, e := range tc.Final.RAM {
		actual := ram[e.Addr&0xFFFFFF]
		if actual != e.Value {
			addMismatch(&res, fmt.Sprintf("ram[%06X]", e.Addr), fmt.Sprintf("%02X", e.Value), fmt.Sprintf("%02X", actual))
		}
	}

	compareTrace(&res, tc.Cycles, trace)

	res.Passed = len(res.Mismatches) == 0
	return res
}

func compareRegs(res *Result, want, got cpu.Registers) {
	check := func(field string, w, g uint32) {
		if w != g {
			addMismatch(res, field, fmt.Sprintf("%X", w), fmt.Sprintf("%X", g))
		}
	}
	check("PC", uint32(want.PC), uint32(got.PC))
	check("S", uint32(want.S), uint32(got.S))
	check("A", uint32(want.A), uint32(got.A))
	check("X", uint32(want.X), uint32(got.X))
	check("Y", uint32(want.Y), uint32(got.Y))
	check("D", uint32(want.D), uint32(got.D))
	check("DBR", uint32(want.DBR), uint32(got.DBR))
	check("PBR", uint32(want.PBR), uint32(got.PBR))
	check("P", uint32(want.P), uint32(got.P))
}

func compareTrace(res *Result, want []CycleRecord, got []cpu.CycleEvent) {
	n := len(want)
	if len(got) > n {
		n = len(got)
	}
	for i := 0; i < n; i++ {
		if i >= len(want) {
			addMismatch(res, fmt.Sprintf("cycle[%d]", i), "<end of trace>", describeEvent(got[i]))
			continue
		}
		if i >= len(got) {
			addMismatch(res, fmt.Sprintf("cycle[%d]", i), describeRecord(want[i]), "<end of trace>")
			continue
		}
		w, g := want[i], got[i]
		if w.Addr != g.Addr24 || w.Tag != g.Tag.String() || (w.HasValue && w.Value != g.Value) {
			addMismatch(res, fmt.Sprintf("cycle[%d]", i), describeRecord(w), describeEvent(g))
		}
	}
}

func describeRecord(r CycleRecord) string {
	if !r.HasValue {
		return fmt.Sprintf("%06X ?? %s", r.Addr, r.Tag)
	}
	return fmt.Sprintf("%06X %02X %s", r.Addr, r.Value, r.Tag)
}

func describeEvent(e cpu.CycleEvent) string {
	return fmt.Sprintf("%06X %02X %s", e.Addr24, e.Value, e.Tag)
}

func addMismatch(res *Result, field, expected, actual string) {
	res.Mismatches = append(res.Mismatches, Mismatch{Field: field, Expected: expected, Actual: actual})
}
