package game

import (
	"bytes"
	"fmt"
	"log"
	"sort"

	internalaudio "github.com/decker502/antchain/internal/audio"
	"github.com/decker502/antchain/pkg/config"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// CueBank 音效资源库
// 职责：
//   - 持有音效配方表（音效ID -> 配方）
//   - 首次使用时用 beep 合成 PCM 并缓存
//   - 基于 PCM 创建 Ebitengine 播放器（音乐使用无限循环流）
type CueBank struct {
	audioContext *audio.Context // 可为 nil（无音频设备/测试），此时只能合成不能播放
	sampleRate   int
	recipes      map[string]config.CueRecipe
	pcmCache     map[string][]byte
}

// NewCueBank 创建音效资源库
//
// 参数：
//   - ctx: Ebitengine 音频上下文，可为 nil
//   - cfg: 音效配方表
//
// 返回：
//   - error: 配方采样率与音频上下文不一致时返回错误
func NewCueBank(ctx *audio.Context, cfg *config.AudioCueConfig) (*CueBank, error) {
	if cfg == nil {
		return nil, fmt.Errorf("audio cue config is nil")
	}
	if ctx != nil && ctx.SampleRate() != cfg.SampleRate {
		return nil, fmt.Errorf("cue sample rate %d does not match audio context %d", cfg.SampleRate, ctx.SampleRate())
	}

	return &CueBank{
		audioContext: ctx,
		sampleRate:   cfg.SampleRate,
		recipes:      cfg.Cues,
		pcmCache:     make(map[string][]byte),
	}, nil
}

// Has 检查音效ID是否已注册
func (b *CueBank) Has(cueID string) bool {
	_, ok := b.recipes[cueID]
	return ok
}

// Kind 返回音效类型
func (b *CueBank) Kind(cueID string) (config.CueKind, bool) {
	r, ok := b.recipes[cueID]
	return r.Kind, ok
}

// IDs 返回所有已注册的音效ID（排序）
func (b *CueBank) IDs() []string {
	ids := make([]string, 0, len(b.recipes))
	for id := range b.recipes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PCM 返回音效的 16-bit 立体声 PCM 数据（带缓存）
func (b *CueBank) PCM(cueID string) ([]byte, error) {
	if pcm, ok := b.pcmCache[cueID]; ok {
		return pcm, nil
	}

	recipe, ok := b.recipes[cueID]
	if !ok {
		return nil, fmt.Errorf("cue %s not registered", cueID)
	}

	pcm, err := internalaudio.RenderPCM(internalaudio.BuildCue(recipe, beep.SampleRate(b.sampleRate)))
	if err != nil {
		return nil, fmt.Errorf("synthesize cue %s: %w", cueID, err)
	}

	b.pcmCache[cueID] = pcm
	log.Printf("[CueBank] Synthesized %s: %d bytes (%.2fs)", cueID, len(pcm), recipe.TotalDuration())
	return pcm, nil
}

// NewPlayer 为音效创建播放器
// 音乐类型使用 audio.NewInfiniteLoop 循环播放
func (b *CueBank) NewPlayer(cueID string) (*audio.Player, error) {
	if b.audioContext == nil {
		return nil, fmt.Errorf("audio context not available")
	}

	pcm, err := b.PCM(cueID)
	if err != nil {
		return nil, err
	}

	if kind, _ := b.Kind(cueID); kind == config.CueMusic {
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		player, err := b.audioContext.NewPlayer(loop)
		if err != nil {
			return nil, fmt.Errorf("create music player %s: %w", cueID, err)
		}
		return player, nil
	}

	return b.audioContext.NewPlayerFromBytes(pcm), nil
}
