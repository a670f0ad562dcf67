package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ldaImmediateVector is a minimal single-step vector for LDA #$42 in
// emulation mode, 8-bit accumulator: opcode fetch then operand fetch,
// both reads, with the expected N/Z flags against a nonzero, non-negative
// operand.
const ldaImmediateVector = `[
  {
    "name": "lda_imm_8bit",
    "initial": {
      "pc": 32768, "s": 511, "a": 0, "x": 0, "y": 0,
      "dbr": 0, "pbr": 0, "d": 0, "p": 54, "e": true,
      "ram": [[32768, 169], [32769, 66]]
    },
    "final": {
      "pc": 32770, "s": 511, "a": 66, "x": 0, "y": 0,
      "dbr": 0, "pbr": 0, "d": 0, "p": 52, "e": true,
      "ram": [[32768, 169], [32769, 66]]
    },
    "cycles": [
      [32768, 169, "read"],
      [32769, 66, "read"]
    ]
  }
]`

func TestLoadCasesDecodesVector(t *testing.T) {
	cases, err := LoadCases([]byte(ldaImmediateVector))
	require.NoError(t, err)
	require.Len(t, cases, 1)

	tc := cases[0]
	assert.Equal(t, "lda_imm_8bit", tc.Name)
	assert.Equal(t, uint16(0x8000), tc.Initial.PC)
	assert.Equal(t, uint16(0x8002), tc.Final.PC)
	assert.Equal(t, uint16(0x0042), tc.Final.A)
	require.Len(t, tc.Cycles, 2)
	assert.Equal(t, "read", tc.Cycles[0].Tag)
	assert.True(t, tc.Cycles[1].HasValue)
	assert.Equal(t, uint8(0x42), tc.Cycles[1].Value)
}

func TestLoadCasesRejectsMalformedCycle(t *testing.T) {
	_, err := LoadCases([]byte(`[{"name":"bad","initial":{},"final":{},"cycles":[[1,2]]}]`))
	assert.Error(t, err)
}

func TestRunLDAImmediateMatchesVector(t *testing.T) {
	cases, err := LoadCases([]byte(ldaImmediateVector))
	require.NoError(t, err)
	require.Len(t, cases, 1)

	res := Run(cases[0])
	assert.True(t, res.Passed, "mismatches: %+v", res.Mismatches)
	assert.Empty(t, res.Mismatches)
}

func TestRunDetectsRegisterMismatch(t *testing.T) {
	cases, err := LoadCases([]byte(ldaImmediateVector))
	require.NoError(t, err)

	tc := cases[0]
	tc.Final.A = 0x99 // deliberately wrong, to exercise the mismatch path

	res := Run(tc)
	assert.False(t, res.Passed)
	require.NotEmpty(t, res.Mismatches)
}
