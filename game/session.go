package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/milk9111/jumpman/obj"
	"github.com/milk9111/jumpman/prefabs"
)

// Session owns all mutable game state: the current screen, the sound flag and
// the entities of the current play-through. Frontends drive it with Update,
// Click and JumpPressed and draw from Scene.
type Session struct {
	specs   *prefabs.Specs
	pending *prefabs.Specs

	world   *obj.World
	buttons *obj.Buttons

	state        State
	soundEnabled bool
	ticks        int
	input        Input

	hero    *obj.Hero
	enemies []*obj.Enemy
	flag    *obj.Flag

	events    EventQueue
	scheduler *Scheduler

	audio   Audio
	quitter Quitter
	logger  *log.Logger
}

type Option func(s *Session)

func WithAudio(a Audio) Option {
	return func(s *Session) {
		if a != nil {
			s.audio = a
		}
	}
}

func WithQuitter(q Quitter) Option {
	return func(s *Session) {
		s.quitter = q
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithSoundEnabled(enabled bool) Option {
	return func(s *Session) {
		s.soundEnabled = enabled
	}
}

func WithScheduler(sched *Scheduler) Option {
	return func(s *Session) {
		if sched != nil {
			s.scheduler = sched
		}
	}
}

// NewSession builds the static world from specs and starts on the menu with
// sound enabled.
func NewSession(specs *prefabs.Specs, opts ...Option) *Session {
	if specs == nil {
		specs = prefabs.MustLoadDefaults()
	}
	s := &Session{
		specs:        specs,
		state:        StateMenu,
		soundEnabled: true,
		audio:        nopAudio{},
		logger:       log.New(io.Discard),
		scheduler:    NewScheduler(DefaultSystems()...),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.buildWorld()
	return s
}

func (s *Session) buildWorld() {
	s.world = obj.NewWorld(s.specs.World)
	s.buttons = obj.NewButtons(s.specs.UI)
}

// Start is called once when the program launches.
func (s *Session) Start() {
	if s.soundEnabled {
		s.audio.PlayMusic(MusicBG)
	}
}

func (s *Session) State() State          { return s.state }
func (s *Session) SoundEnabled() bool    { return s.soundEnabled }
func (s *Session) Ticks() int            { return s.ticks }
func (s *Session) Hero() *obj.Hero       { return s.hero }
func (s *Session) Enemies() []*obj.Enemy { return s.enemies }
func (s *Session) Flag() *obj.Flag       { return s.flag }
func (s *Session) World() *obj.World     { return s.world }
func (s *Session) Specs() *prefabs.Specs { return s.specs }
func (s *Session) Events() *EventQueue   { return &s.events }
func (s *Session) Logger() *log.Logger   { return s.logger }

func (s *Session) Platforms() []*obj.Platform {
	return s.world.Platforms
}

// SetSpecs swaps in reloaded prefabs. The world and entities keep their current
// layout until the next reset so a play-through never changes under the player.
func (s *Session) SetSpecs(specs *prefabs.Specs) {
	if specs == nil {
		return
	}
	s.pending = specs
	s.logger.Info("prefabs reloaded, applying at next reset")
}

// Buttons returns the clickable buttons of the current screen in hit-test order.
func (s *Session) Buttons() []*obj.Button {
	switch s.state {
	case StateMenu:
		return []*obj.Button{s.buttons.Start, s.buttons.Sound, s.buttons.Exit}
	case StateGameOver, StateWin:
		return []*obj.Button{s.buttons.Back}
	default:
		return nil
	}
}

var buttonEvents = map[string]Event{
	obj.ButtonStart: EventStartClicked,
	obj.ButtonSound: EventSoundToggled,
	obj.ButtonExit:  EventExitClicked,
	obj.ButtonBack:  EventBackClicked,
}

// Click hit-tests the current screen's buttons and dispatches the first one
// under the point. Clicks that miss every button are ignored. It reports
// whether a button was hit.
func (s *Session) Click(x, y float64) bool {
	for _, b := range s.Buttons() {
		if b.IsClicked(x, y) {
			s.Dispatch(buttonEvents[b.Name])
			return true
		}
	}
	return false
}

// JumpPressed handles the jump key press. Outside of play it does nothing.
func (s *Session) JumpPressed() {
	if s.state != StatePlaying || s.hero == nil {
		return
	}
	if s.hero.Jump() {
		s.logger.Debug("jump", "x", s.hero.Pos.X, "y", s.hero.Pos.Y)
		if s.soundEnabled {
			s.audio.PlaySound(SoundJump)
		}
	}
}

// Update runs one tick: queued events first, then the simulation if playing.
func (s *Session) Update(in Input) {
	s.ticks++
	s.input = in

	for _, evt := range s.events.Drain() {
		s.Dispatch(evt)
	}

	if s.state == StatePlaying {
		s.scheduler.Update(s)
	}
}

// Dispatch applies e to the state machine and runs the side effects of the
// transition. Events with no transition from the current state are ignored.
// It reports whether a transition happened.
func (s *Session) Dispatch(e Event) bool {
	from := s.state
	next, ok := Next(from, e)
	if !ok {
		s.logger.Debug("ignored event", "state", from, "event", e)
		return false
	}

	switch e {
	case EventStartClicked:
		s.reset()
		if s.soundEnabled {
			s.audio.PlayMusic(MusicBG)
		}
	case EventSoundToggled:
		s.soundEnabled = !s.soundEnabled
		if s.soundEnabled {
			s.audio.PlayMusic(MusicBG)
		} else {
			s.audio.StopMusic()
		}
	case EventExitClicked:
		if s.quitter != nil {
			s.quitter.Quit()
		}
	case EventEnemyCollision:
		s.audio.StopMusic()
		s.audio.PlaySound(SoundHit)
	case EventFlagReached:
		s.audio.StopMusic()
		s.audio.PlaySound(SoundWin)
	case EventBackClicked:
		s.discard()
	}

	s.state = next
	if from != next {
		s.logger.Info("state change", "from", from, "to", next, "event", e)
	} else {
		s.logger.Debug("event", "state", from, "event", e, "sound", s.soundEnabled)
	}
	return true
}

// reset recreates the hero, enemies and flag at their spawn points.
func (s *Session) reset() {
	if s.pending != nil {
		s.specs = s.pending
		s.pending = nil
		s.buildWorld()
	}

	s.hero = obj.NewHero(s.specs.Hero, s.world.Width)
	s.enemies = s.enemies[:0]
	for _, patrol := range s.specs.Enemy.Patrols {
		s.enemies = append(s.enemies, obj.NewEnemy(s.specs.Enemy, patrol))
	}
	s.flag = obj.NewFlag(s.specs.Flag)
	s.logger.Debug("session reset", "enemies", len(s.enemies))
}

func (s *Session) discard() {
	s.hero = nil
	s.enemies = nil
	s.flag = nil
}
