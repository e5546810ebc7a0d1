package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/hennsa/Aon-sub000/internal/game/dice"
)

func TestRollDigit_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 200; i++ {
		d := dice.RollDigit(src)
		assert.GreaterOrEqual(t, d, 0)
		assert.LessOrEqual(t, d, 9)
	}
}

func TestCryptoSource_PanicsOnInvalidN(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
	assert.Panics(t, func() { src.Intn(-1) })
}

func TestSequenceSource_ReplaysAndWraps(t *testing.T) {
	src := dice.NewSequenceSource(3, 7, 9)
	assert.Equal(t, 3, dice.RollDigit(src))
	assert.Equal(t, 7, dice.RollDigit(src))
	assert.Equal(t, 9, dice.RollDigit(src))
	assert.Equal(t, 3, dice.RollDigit(src)) // wraps
}

func TestSequenceSource_ReducesModuloN(t *testing.T) {
	src := dice.NewSequenceSource(12)
	assert.Equal(t, 2, dice.RollDigit(src))
}

func TestSequenceSource_Property_AlwaysInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOfN(rapid.IntRange(0, 1000), 1, 20).Draw(rt, "values")
		src := dice.NewSequenceSource(values...)
		for range values {
			d := dice.RollDigit(src)
			assert.GreaterOrEqual(rt, d, 0)
			assert.Less(rt, d, dice.Digits)
		}
	})
}
