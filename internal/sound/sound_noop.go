//go:build ci

package sound

const (
	SoundPlace = "place"
	SoundStart = "start"
	SoundWin   = "win"
	SoundLose  = "lose"
	SoundChat  = "chat"
)

type SoundManager struct{}

func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

func (sm *SoundManager) Init() error {
	return nil
}

func (sm *SoundManager) Play(name string) {
	// No-op
}

func (sm *SoundManager) Close() {
	// No-op
}
