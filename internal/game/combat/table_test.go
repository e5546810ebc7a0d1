package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/hennsa/Aon-sub000/internal/game/combat"
)

func testTable() *combat.Table {
	return &combat.Table{
		Bands: []combat.Band{
			{Min: -4, Max: -1, Rows: []combat.Row{
				{Roll: 0, PlayerLoss: 4, EnemyLoss: 0},
				{Roll: 5, PlayerLoss: 2, EnemyLoss: 1},
			}},
			{Min: 0, Max: 4, Rows: []combat.Row{
				{Roll: 0, PlayerLoss: 3, EnemyLoss: 1},
				{Roll: 5, PlayerLoss: 1, EnemyLoss: 3},
				{Roll: 9, PlayerLoss: 0, EnemyLoss: 5},
			}},
		},
	}
}

func TestTable_Resolve_ExactBandAndRow(t *testing.T) {
	pl, el := testTable().Resolve(2, 5)
	assert.Equal(t, 1, pl)
	assert.Equal(t, 3, el)

	pl, el = testTable().Resolve(-2, 0)
	assert.Equal(t, 4, pl)
	assert.Equal(t, 0, el)
}

func TestTable_Resolve_ClampsRatioBelowAndAbove(t *testing.T) {
	// -10 is below every band: clamp to band (-4,-1).
	pl, el := testTable().Resolve(-10, 5)
	assert.Equal(t, 2, pl)
	assert.Equal(t, 1, el)

	// +10 is above every band: clamp to band (0,4).
	pl, el = testTable().Resolve(10, 9)
	assert.Equal(t, 0, pl)
	assert.Equal(t, 5, el)
}

func TestTable_Resolve_MissingRollFallsBackToFirstRow(t *testing.T) {
	pl, el := testTable().Resolve(2, 7) // band (0,4) has no row for 7
	assert.Equal(t, 3, pl)
	assert.Equal(t, 1, el)
}

func TestTable_Resolve_EmptyTableYieldsZeroLosses(t *testing.T) {
	empty := &combat.Table{}
	pl, el := empty.Resolve(3, 5)
	assert.Zero(t, pl)
	assert.Zero(t, el)
}

func TestTable_Resolve_Property_NeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ratio := rapid.IntRange(-30, 30).Draw(rt, "ratio")
		roll := rapid.IntRange(0, 9).Draw(rt, "roll")
		pl, el := testTable().Resolve(ratio, roll)
		assert.GreaterOrEqual(rt, pl, 0)
		assert.GreaterOrEqual(rt, el, 0)
	})
}

func TestLoadTableFromBytes(t *testing.T) {
	data := []byte(`
bands:
  - min: 0
    max: 4
    rows:
      - {roll: 0, playerLoss: 3, enemyLoss: 1}
      - {roll: 5, playerLoss: 1, enemyLoss: 3}
  - min: -4
    max: -1
    rows:
      - {roll: 0, playerLoss: 4, enemyLoss: 0}
`)
	tbl, err := combat.LoadTableFromBytes(data)
	require.NoError(t, err)
	require.Len(t, tbl.Bands, 2)

	// Bands are reordered by min ascending.
	assert.Equal(t, -4, tbl.Bands[0].Min)
	assert.Equal(t, 0, tbl.Bands[1].Min)
}

func TestLoadTableFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"inverted band", "bands:\n  - min: 4\n    max: 0\n", "min 4 exceeds max 0"},
		{"roll out of domain", "bands:\n  - min: 0\n    max: 4\n    rows:\n      - {roll: 12}\n", "outside 0-9 die domain"},
		{"negative loss", "bands:\n  - min: 0\n    max: 4\n    rows:\n      - {roll: 3, playerLoss: -1}\n", "must not be negative"},
		{"bad yaml", "bands: [", "parsing combat table YAML"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := combat.LoadTableFromBytes([]byte(tc.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
