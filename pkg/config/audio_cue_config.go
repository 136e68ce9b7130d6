package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CueKind 音频类型
type CueKind string

const (
	// CueSound 音效（单次播放）
	CueSound CueKind = "sound"
	// CueMusic 背景音乐（循环播放）
	CueMusic CueKind = "music"
)

// AudioCueConfig 合成音效配方表
// 游戏不附带音频文件，所有音效都由配方实时合成
//
// 配置文件位置: data/audio_cues.yaml
type AudioCueConfig struct {
	// SampleRate 采样率，必须与音频上下文一致
	SampleRate int `yaml:"sampleRate"`

	// Cues 音效ID -> 配方
	Cues map[string]CueRecipe `yaml:"cues"`
}

// CueRecipe 单个音效的合成配方
type CueRecipe struct {
	Kind    CueKind    `yaml:"kind"`
	Wave    string     `yaml:"wave"`    // 默认波形：sine / square / saw / noise
	Attack  float64    `yaml:"attack"`  // 每个音符的起音时长（秒）
	Release float64    `yaml:"release"` // 每个音符的释音时长（秒）
	Volume  float64    `yaml:"volume"`  // 0.0 ~ 1.0
	Notes   []NoteSpec `yaml:"notes"`
}

// NoteSpec 单个音符；Freq 为 0 表示休止
type NoteSpec struct {
	Freq     float64 `yaml:"freq"`
	Duration float64 `yaml:"duration"` // 秒
	Wave     string  `yaml:"wave"`     // 可选，覆盖配方的默认波形
}

var validWaves = map[string]bool{"sine": true, "square": true, "saw": true, "noise": true}

// LoadAudioCueConfig 加载音效配方表
func LoadAudioCueConfig(path string) (*AudioCueConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio cue config: %w", err)
	}
	return ParseAudioCueConfig(data)
}

// ParseAudioCueConfig 从 YAML 数据解析音效配方表
func ParseAudioCueConfig(data []byte) (*AudioCueConfig, error) {
	var cfg AudioCueConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse audio cue config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid audio cue config: %w", err)
	}
	return &cfg, nil
}

// Validate 验证配置有效性
func (c *AudioCueConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sampleRate must be > 0, got %d", c.SampleRate)
	}

	for id, cue := range c.Cues {
		if cue.Kind != CueSound && cue.Kind != CueMusic {
			return fmt.Errorf("cue %s: unknown kind %q", id, cue.Kind)
		}
		if !validWaves[cue.Wave] {
			return fmt.Errorf("cue %s: unknown wave %q", id, cue.Wave)
		}
		if cue.Volume < 0 || cue.Volume > 1 {
			return fmt.Errorf("cue %s: volume must be within [0, 1], got %.2f", id, cue.Volume)
		}
		if cue.Attack < 0 || cue.Release < 0 {
			return fmt.Errorf("cue %s: attack/release must be >= 0", id)
		}
		if len(cue.Notes) == 0 {
			return fmt.Errorf("cue %s: no notes", id)
		}
		for i, n := range cue.Notes {
			if n.Duration <= 0 {
				return fmt.Errorf("cue %s note %d: duration must be > 0", id, i)
			}
			if n.Freq < 0 {
				return fmt.Errorf("cue %s note %d: freq must be >= 0", id, i)
			}
			if n.Wave != "" && !validWaves[n.Wave] {
				return fmt.Errorf("cue %s note %d: unknown wave %q", id, i, n.Wave)
			}
		}
	}
	return nil
}

// TotalDuration 返回配方的总时长（秒）
func (r CueRecipe) TotalDuration() float64 {
	total := 0.0
	for _, n := range r.Notes {
		total += n.Duration
	}
	return total
}
