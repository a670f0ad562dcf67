package verify

import (
	"encoding/json"
	"fmt"
)

// LoadCases parses a JSON array of single-step test vectors in the
// wire format described by the harness interface: each case carries
// "initial"/"final" register+RAM objects and a "cycles" array of
// [addr24, value-or-null, tag] triples.
func LoadCases(data []byte) ([]Case, error) {
	var raw []rawCase
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("verify: decode test vectors: %w", err)
	}
	cases := make([]Case, 0, len(raw))
	for _, rc := range raw {
		c, err := rc.toCase()
		if err != nil {
			return nil, fmt.Errorf("verify: case %q: %w", rc.Name, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

type rawCase struct {
	Name    string      `json:"name"`
	Initial rawRegState `json:"initial"`
	Final   rawRegState `json:"final"`
	Cycles  [][]any     `json:"cycles"`
}

type rawRegState struct {
	PC  uint16  `json:"pc"`
	S   uint16  `json:"s"`
	A   uint16  `json:"a"`
	X   uint16  `json:"x"`
	Y   uint16  `json:"y"`
	DBR uint8   `json:"dbr"`
	PBR uint8   `json:"pbr"`
	D   uint16  `json:"d"`
	P   uint8   `json:"p"`
	E   bool    `json:"e"`
	RAM [][2]uint32 `json:"ram"`
}

func (rc rawCase) toCase() (Case, error) {
	cycles := make([]CycleRecord, 0, len(rc.Cycles))
	for i, rec := range rc.Cycles {
		if len(rec) != 3 {
			return Case{}, fmt.Errorf("cycle %d: expected 3-element record, got %d", i, len(rec))
		}
		addr, ok := rec[0].(float64)
		if !ok {
			return Case{}, fmt.Errorf("cycle %d: bad address", i)
		}
		tag, ok := rec[2].(string)
		if !ok {
			return Case{}, fmt.Errorf("cycle %d: bad tag", i)
		}
		cr := CycleRecord{Addr: uint32(addr), Tag: tag}
		if v, ok := rec[1].(float64); ok {
			cr.Value = uint8(v)
			cr.HasValue = true
		}
		cycles = append(cycles, cr)
	}
	return Case{
		Name:    rc.Name,
		Initial: toRegState(rc.Initial),
		Final:   toRegState(rc.Final),
		Cycles:  cycles,
	}, nil
}

func toRegState(r rawRegState) RegState {
	ram := make([]RAMEntry, len(r.RAM))
	for i, pair := range r.RAM {
		ram[i] = RAMEntry{Addr: pair[0], Value: uint8(pair[1])}
	}
	return RegState{
		PC: r.PC, S: r.S, A: r.A, X: r.X, Y: r.Y,
		DBR: r.DBR, PBR: r.PBR, D: r.D, P: r.P, E: r.E,
		RAM: ram,
	}
}
