package cpu

// Clock converts the per-access master-clock divisors Bus A returns into
// a running master-clock count, and tracks the CPU-cycle count (one unit
// per Phi1/Phi2 pair, i.e. per bus or internal cycle) independently, since the two are the
// quantities different callers care about: a scheduler needs master
// clocks to interleave the PPU/APU, while cycle-exact test vectors count
// CPU cycles.
type Clock struct {
	masterCycles uint64
	cpuCycles    uint64
}

// Advance accounts for one CPU cycle that consumed the given master-clock
// divisor (1..15).
func (cl *Clock) Advance(divisor uint8) {
	cl.masterCycles += uint64(divisor)
	cl.cpuCycles++
}

// MasterCycles returns the total number of master clocks elapsed.
func (cl *Clock) MasterCycles() uint64 { return cl.masterCycles }

// CPUCycles returns the total number of CPU (Phi1/Phi2) cycles elapsed.
func (cl *Clock) CPUCycles() uint64 { return cl.cpuCycles }

// Reset zeroes the clock.
func (cl *Clock) Reset() {
	cl.masterCycles = 0
	cl.cpuCycles = 0
}

// AddMasterCycles advances the master-clock count without incrementing
// the CPU-cycle count. Used to account for DMA/HDMA bus-hold periods
// that consume master clocks without the CPU core itself ticking.
func (cl *Clock) AddMasterCycles(n uint64) {
	cl.masterCycles += n
}

// CycleTag classifies a recorded bus cycle for the verification harness
// and any other cycle-trace consumer.
type CycleTag uint8

const (
	CycleRead CycleTag = iota
	CycleWrite
	CycleInternal
)

func (t CycleTag) String() string {
	switch t {
	case CycleRead:
		return "read"
	case CycleWrite:
		return "write"
	default:
		return "internal"
	}
}

// CycleEvent describes one Phi2 bus transaction (or internal cycle) for
// an observer such as the verification harness.
type CycleEvent struct {
	Addr24 uint32
	Value  uint8
	Tag    CycleTag
}

// CycleObserver receives every cycle the CPU core performs, in order.
type CycleObserver func(CycleEvent)
