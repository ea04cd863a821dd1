package game

// DefaultSystems is the per-tick simulation order: move the hero, move the
// enemies, check for a loss, check for a win, then wave the flag.
func DefaultSystems() []System {
	return []System{
		SystemFunc(heroSystem),
		SystemFunc(enemySystem),
		SystemFunc(enemyCollisionSystem),
		SystemFunc(victorySystem),
		SystemFunc(flagAnimationSystem),
	}
}

func heroSystem(s *Session) {
	if s.hero == nil {
		return
	}
	s.hero.Update(s.input.Left, s.input.Right, s.world.Platforms)
}

func enemySystem(s *Session) {
	for _, e := range s.enemies {
		e.Update()
	}
}

func enemyCollisionSystem(s *Session) {
	if s.hero != nil && s.hero.CollidesWithAny(s.enemies) {
		s.Dispatch(EventEnemyCollision)
	}
}

func victorySystem(s *Session) {
	if s.flag != nil && s.flag.CheckVictory(s.hero) {
		s.Dispatch(EventFlagReached)
	}
}

func flagAnimationSystem(s *Session) {
	if s.flag != nil {
		s.flag.Update()
	}
}
