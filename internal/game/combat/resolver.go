package combat

import "github.com/hennsa/Aon-sub000/internal/game/character"

// Enemy is one opponent in a fight. The document model carries enemies as
// plain skill/endurance pairs; the caller tracks endurance between rounds.
type Enemy struct {
	Name        string
	CombatSkill int
	Endurance   int
}

// RoundResult holds the full audit trail for one resolved combat round.
// Endurance fields are the post-round values, floored at zero; defeat flags
// come from the unfloored post-round values.
type RoundResult struct {
	// Ratio is the combat ratio the band lookup used.
	Ratio int
	// Roll is the 0-9 random number the row lookup used.
	Roll int
	// PlayerLoss and EnemyLoss are the endurance losses from the table.
	PlayerLoss int
	EnemyLoss  int
	// PlayerEndurance and EnemyEndurance are the post-round values.
	PlayerEndurance int
	EnemyEndurance  int
	// PlayerDefeated and EnemyDefeated report endurance <= 0 after the round.
	PlayerDefeated bool
	EnemyDefeated  bool
}

// Ratio computes the combat ratio: the player's effective combat skill
// (base skill plus combat-skill bonus attribute) minus the enemy's skill.
func Ratio(ch *character.Character, enemy Enemy) int {
	return ch.EffectiveCombatSkill() - enemy.CombatSkill
}

// ResolveRound applies one round of combat using the given table.
//
// Resolution is stateless: neither ch nor enemy is mutated. The caller is
// responsible for persisting the returned endurance values between rounds.
//
// Precondition: t and ch must be non-nil; roll must be in [0, 9].
// Postcondition: PlayerEndurance >= 0 and EnemyEndurance >= 0.
func ResolveRound(t *Table, ch *character.Character, enemy Enemy, roll int) RoundResult {
	ratio := Ratio(ch, enemy)
	playerLoss, enemyLoss := t.Resolve(ratio, roll)

	playerEnd := ch.Endurance - playerLoss
	enemyEnd := enemy.Endurance - enemyLoss

	result := RoundResult{
		Ratio:          ratio,
		Roll:           roll,
		PlayerLoss:     playerLoss,
		EnemyLoss:      enemyLoss,
		PlayerDefeated: playerEnd <= 0,
		EnemyDefeated:  enemyEnd <= 0,
	}

	if playerEnd < 0 {
		playerEnd = 0
	}
	if enemyEnd < 0 {
		enemyEnd = 0
	}
	result.PlayerEndurance = playerEnd
	result.EnemyEndurance = enemyEnd
	return result
}
