// Package verify implements the single-step JSON test harness: it
// seeds a CPU/Bus A pair from a test vector's initial state, executes
// exactly one instruction, and compares the resulting registers and
// cycle-by-cycle bus trace against the vector's expected final state.
package verify

import "github.com/sfc-emu/ricoh5a22/cpu"

// RAMEntry is one [address24, value] pair from a test vector's RAM list.
type RAMEntry struct {
	Addr  uint32
	Value uint8
}

// RegState is the register snapshot shape shared by a vector's
// "initial" and "final" objects.
type RegState struct {
	PC  uint16
	S   uint16
	A   uint16
	X   uint16
	Y   uint16
	DBR uint8
	PBR uint8
	D   uint16
	P   uint8
	E   bool
	RAM []RAMEntry
}

// CycleRecord is one expected bus transaction: Addr/Value mirror the
// JSON pair (a null JSON value becomes HasValue=false for internal
// cycles), and Tag is "read", "write", or "internal".
type CycleRecord struct {
	Addr     uint32
	Value    uint8
	HasValue bool
	Tag      string
}

// Case is one named single-step test vector.
type Case struct {
	Name    string
	Initial RegState
	Final   RegState
	Cycles  []CycleRecord
}

// Mismatch describes one point of divergence between actual and
// expected results, for diagnostic reporting.
type Mismatch struct {
	Field    string
	Expected string
	Actual   string
}

// Result is the outcome of running one Case.
type Result struct {
	Case       string
	Passed     bool
	Mismatches []Mismatch
}

func regsFromState(s RegState) cpu.Registers {
	return cpu.Registers{
		A: s.A, X: s.X, Y: s.Y, S: s.S, D: s.D,
		DBR: s.DBR, PBR: s.PBR, PC: s.PC, P: s.P,
	}
}
