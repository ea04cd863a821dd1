package sound

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Ebiten plays the bank through ebiten's audio context. Only one context may
// exist per process, so build a single Ebiten.
type Ebiten struct {
	ctx     *audio.Context
	pcm     map[string][]byte
	players map[string]*audio.Player

	music      *audio.Player
	musicTrack string

	logger *log.Logger
}

func NewEbiten(bank *Bank, logger *log.Logger) (*Ebiten, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Ebiten{
		ctx:     audio.NewContext(int(SampleRate)),
		pcm:     make(map[string][]byte, len(Names)),
		players: make(map[string]*audio.Player),
		logger:  logger,
	}
	for _, name := range Names {
		b, err := bank.PCM(name)
		if err != nil {
			return nil, err
		}
		e.pcm[name] = b
	}
	return e, nil
}

func (e *Ebiten) PlaySound(name string) {
	player, ok := e.players[name]
	if !ok {
		b, found := e.pcm[name]
		if !found {
			e.logger.Warn("unknown sound", "name", name)
			return
		}
		player = e.ctx.NewPlayerFromBytes(b)
		e.players[name] = player
	}
	// restart from the top if it is still ringing
	if err := player.Rewind(); err != nil {
		e.logger.Warn("rewind sound", "name", name, "err", err)
	}
	player.Play()
}

func (e *Ebiten) PlayMusic(name string) {
	if e.music != nil && e.musicTrack == name {
		if !e.music.IsPlaying() {
			_ = e.music.Rewind()
			e.music.Play()
		}
		return
	}
	e.StopMusic()

	b, ok := e.pcm[name]
	if !ok {
		e.logger.Warn("unknown music track", "name", name)
		return
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(b), int64(len(b)))
	player, err := e.ctx.NewPlayer(loop)
	if err != nil {
		e.logger.Error("music player", "track", name, "err", fmt.Errorf("sound: %w", err))
		return
	}
	e.music = player
	e.musicTrack = name
	player.Play()
}

func (e *Ebiten) StopMusic() {
	if e.music == nil {
		return
	}
	e.music.Pause()
	_ = e.music.Rewind()
}

// Close releases every player.
func (e *Ebiten) Close() error {
	for name, p := range e.players {
		if err := p.Close(); err != nil {
			return fmt.Errorf("sound: close %s: %w", name, err)
		}
	}
	if e.music != nil {
		return e.music.Close()
	}
	return nil
}
