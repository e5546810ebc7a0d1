// Package combat implements the data-defined combat results table and the
// single-round combat resolver for gamebook fights.
package combat

// Row maps one random-number pick to the endurance losses for both sides.
type Row struct {
	Roll       int `yaml:"roll"`
	PlayerLoss int `yaml:"playerLoss"`
	EnemyLoss  int `yaml:"enemyLoss"`
}

// Band covers an inclusive combat-ratio range with its roll-indexed rows.
type Band struct {
	Min  int   `yaml:"min"`
	Max  int   `yaml:"max"`
	Rows []Row `yaml:"rows"`
}

// Contains reports whether ratio falls inside the band's inclusive range.
func (b Band) Contains(ratio int) bool {
	return ratio >= b.Min && ratio <= b.Max
}

// Table is a ratio-banded, roll-indexed loss lookup for one fighting series.
// A Table is immutable after load and safe for concurrent reads.
//
// Invariant: Bands are ordered by Min ascending.
type Table struct {
	Bands []Band `yaml:"bands"`
}

// Resolve looks up the losses for a combat ratio and a 0-9 roll.
//
// Band selection clamps out-of-range ratios: below every band's min uses the
// first band, above every band's max uses the last. Within the band a missing
// roll falls back to the band's first row. Both fallbacks are deliberate
// degraded-but-defined behaviour, not errors; an empty table yields zero
// losses for both sides.
func (t *Table) Resolve(ratio, roll int) (playerLoss, enemyLoss int) {
	if len(t.Bands) == 0 {
		return 0, 0
	}

	band := t.Bands[0]
	if ratio > t.Bands[len(t.Bands)-1].Max {
		band = t.Bands[len(t.Bands)-1]
	} else {
		for _, b := range t.Bands {
			if b.Contains(ratio) {
				band = b
				break
			}
		}
	}

	if len(band.Rows) == 0 {
		return 0, 0
	}
	for _, row := range band.Rows {
		if row.Roll == roll {
			return row.PlayerLoss, row.EnemyLoss
		}
	}
	first := band.Rows[0]
	return first.PlayerLoss, first.EnemyLoss
}
