package sound

// Nop discards every request. It backs --mute and stands in when no audio
// device can be opened.
type Nop struct{}

func (Nop) PlaySound(string) {}
func (Nop) PlayMusic(string) {}
func (Nop) StopMusic()       {}
