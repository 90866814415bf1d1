package config

// AnimationSet lists the frame identifiers of each animation state of a character.
type AnimationSet map[StateID][]string

// PlayerAnimations returns the idle/move frames of the player.
func PlayerAnimations() AnimationSet {
	return AnimationSet{
		Idle: Player.IdleFrames,
		Move: Player.MoveFrames,
	}
}

// EnemyAnimations returns the idle/move frames of a slime kind.
func EnemyAnimations(kind EnemyKind) AnimationSet {
	t := Enemy.Types[kind]
	return AnimationSet{
		Idle: t.IdleFrames,
		Move: t.MoveFrames,
	}
}

// FPS returns the playback rate of an animation state.
func (a AnimationSet) FPS(state StateID) float64 {
	if state == Move {
		return Animation.MoveFPS
	}
	return Animation.IdleFPS
}
