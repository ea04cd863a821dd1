package game

// State is the screen the session is on.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateWin
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// Event drives state transitions.
type Event int

const (
	EventStartClicked Event = iota + 1
	EventSoundToggled
	EventExitClicked
	EventEnemyCollision
	EventFlagReached
	EventBackClicked
)

func (e Event) String() string {
	switch e {
	case EventStartClicked:
		return "start_clicked"
	case EventSoundToggled:
		return "sound_toggled"
	case EventExitClicked:
		return "exit_clicked"
	case EventEnemyCollision:
		return "enemy_collision"
	case EventFlagReached:
		return "flag_reached"
	case EventBackClicked:
		return "back_clicked"
	default:
		return "unknown"
	}
}

// AllStates and AllEvents enumerate the machine's alphabet.
var (
	AllStates = []State{StateMenu, StatePlaying, StateGameOver, StateWin}
	AllEvents = []Event{
		EventStartClicked,
		EventSoundToggled,
		EventExitClicked,
		EventEnemyCollision,
		EventFlagReached,
		EventBackClicked,
	}
)

type transitionKey struct {
	from State
	on   Event
}

var transitions = map[transitionKey]State{
	{StateMenu, EventStartClicked}:      StatePlaying,
	{StateMenu, EventSoundToggled}:      StateMenu,
	{StateMenu, EventExitClicked}:       StateMenu,
	{StatePlaying, EventEnemyCollision}: StateGameOver,
	{StatePlaying, EventFlagReached}:    StateWin,
	{StateGameOver, EventBackClicked}:   StateMenu,
	{StateWin, EventBackClicked}:        StateMenu,
}

// Next returns the state reached from s on e. ok is false when the pair has
// no transition, in which case the returned state is s unchanged.
func Next(s State, e Event) (next State, ok bool) {
	next, ok = transitions[transitionKey{s, e}]
	if !ok {
		return s, false
	}
	return next, true
}
