//go:build !ci

// Package sound 播放对局音效。音效文件缺失或声卡初始化失败时静默降级，
// 不影响游戏本身。
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// 音效名与 assets/sounds 下的文件名（去扩展名）对应
const (
	SoundPlace = "place" // 落子
	SoundStart = "start" // 开局
	SoundWin   = "win"   // 胜利
	SoundLose  = "lose"  // 失败
	SoundChat  = "chat"  // 收到聊天
)

const soundDir = "assets/sounds"

type SoundManager struct {
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{buffers: make(map[string]*beep.Buffer)}
}

// Init 初始化声卡并预加载音效文件
func (sm *SoundManager) Init() error {
	sampleRate := beep.SampleRate(44100)
	// 缓冲取 100ms，落子音效延迟不明显
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("初始化声卡失败: %w", err)
	}
	sm.enabled = true

	return sm.loadAll(sampleRate)
}

// loadAll 预加载音效目录下的所有 mp3/wav 文件，单个文件解码失败跳过
func (sm *SoundManager) loadAll(sampleRate beep.SampleRate) error {
	entries, err := os.ReadDir(soundDir)
	if err != nil {
		// 没有音效目录时静默运行
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("读取音效目录失败: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}
		key := strings.TrimSuffix(name, filepath.Ext(name))
		if buf, err := decodeFile(filepath.Join(soundDir, name), ext, sampleRate); err == nil {
			sm.buffers[key] = buf
		}
	}

	return nil
}

// decodeFile 解码单个音效文件，统一重采样为双声道缓冲
func decodeFile(path, ext string, sampleRate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   4,
	})
	buf.Append(resampled)
	return buf, nil
}

// Play 播放指定音效，未初始化或未加载时不发声
func (sm *SoundManager) Play(name string) {
	if !sm.enabled {
		return
	}
	buf, ok := sm.buffers[name]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

func (sm *SoundManager) Close() {
	sm.enabled = false
}
