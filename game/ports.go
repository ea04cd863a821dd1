package game

// Input is the held-key state for one tick.
type Input struct {
	Left  bool
	Right bool
}

// Audio plays sound effects and background music. Implementations decide how
// sound is produced; the session only decides when.
type Audio interface {
	PlaySound(name string)
	PlayMusic(name string)
	StopMusic()
}

// Quitter ends the process from the menu's exit button.
type Quitter interface {
	Quit()
}

// QuitFunc adapts a function to Quitter.
type QuitFunc func()

func (f QuitFunc) Quit() {
	if f != nil {
		f()
	}
}

const (
	SoundJump = "jump"
	SoundHit  = "hit"
	SoundWin  = "win"
	MusicBG   = "music_bg"
)

type nopAudio struct{}

func (nopAudio) PlaySound(string) {}
func (nopAudio) PlayMusic(string) {}
func (nopAudio) StopMusic()       {}
