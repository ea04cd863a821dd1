package game

// System advances one part of the simulation for a tick.
type System interface {
	Update(s *Session)
}

// SystemFunc adapts a function to System.
type SystemFunc func(s *Session)

func (f SystemFunc) Update(s *Session) { f(s) }

// Scheduler runs systems in order. It stops early once a system takes the
// session out of the playing state so nothing runs after a terminal outcome.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(sess *Session) {
	for _, system := range s.systems {
		if sess.State() != StatePlaying {
			return
		}
		system.Update(sess)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
