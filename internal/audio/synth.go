// Package audio 合成游戏音效
//
// 游戏不附带音频文件：每个音效由配方（data/audio_cues.yaml）描述，
// 在这里用 beep 的流式接口合成，再渲染成 16-bit PCM 交给 Ebitengine 播放。
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/decker502/antchain/pkg/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// ParseWave 解析配置中的波形名称，未知名称回退为正弦波
func ParseWave(name string) WaveType {
	switch name {
	case "square":
		return WaveSquare
	case "saw":
		return WaveSaw
	case "noise":
		return WaveNoise
	default:
		return WaveSine
	}
}

// oscillator 生成原始波形
type oscillator struct {
	freq     float64
	phase    float64
	total    int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator 创建指定时长的振荡器
// freq 为 0 且波形不是噪声时输出静音（休止符）
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
		rng:   rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.total {
		return 0, false
	}

	for i := range samples {
		if o.position >= o.total {
			return i, true
		}

		var val float64
		switch {
		case o.wave == WaveNoise:
			val = o.rng.Float64()*2 - 1
		case o.freq == 0:
			val = 0
		case o.wave == WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case o.wave == WaveSaw:
			val = 2 * (o.phase - 0.5)
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 线性起音/释音包络
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope 为流加上起音/释音包络
// attack + release 超过总时长时按比例压缩
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total && att+rel > 0 {
		scale := float64(total) / float64(att+rel)
		att = int(float64(att) * scale)
		rel = total - att
	}
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume 线性音量 -> beep 的对数音量
// math.Log2(0) 为 -Inf，音量为 0 时直接静音
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// BuildCue 按配方合成音效流
// 每个音符单独套包络后顺序拼接，最后整体应用配方音量
func BuildCue(recipe config.CueRecipe, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(recipe.Notes))
	for _, n := range recipe.Notes {
		waveName := recipe.Wave
		if n.Wave != "" {
			waveName = n.Wave
		}

		d := seconds(n.Duration)
		osc := NewOscillator(n.Freq, d, ParseWave(waveName), rate)
		notes = append(notes, NewEnvelope(osc, d, seconds(recipe.Attack), seconds(recipe.Release), rate))
	}
	return withVolume(beep.Seq(notes...), recipe.Volume)
}
