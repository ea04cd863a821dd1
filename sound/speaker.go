package sound

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays the bank through the beep speaker. It is used by the
// terminal frontend where no ebiten context exists.
type Speaker struct {
	mu     sync.Mutex
	bank   *Bank
	mixer  *beep.Mixer
	music  *beep.Ctrl
	track  string
	logger *log.Logger
}

func NewSpeaker(bank *Bank, logger *log.Logger) (*Speaker, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("sound: init speaker: %w", err)
	}
	s := &Speaker{bank: bank, mixer: &beep.Mixer{}, logger: logger}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Speaker) PlaySound(name string) {
	st, ok := s.bank.Streamer(name)
	if !ok {
		s.logger.Warn("unknown sound", "name", name)
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *Speaker) PlayMusic(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()

	if s.music != nil && s.track == name {
		s.music.Paused = false
		return
	}
	if s.music != nil {
		s.music.Paused = true
		s.music.Streamer = nil
	}

	st, ok := s.bank.Streamer(name)
	if !ok {
		s.logger.Warn("unknown music track", "name", name)
		return
	}
	s.music = &beep.Ctrl{Streamer: beep.Loop(-1, st)}
	s.track = name
	s.mixer.Add(s.music)
}

func (s *Speaker) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Paused = true
	speaker.Unlock()
}

// Close stops all playback and releases the audio device.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
