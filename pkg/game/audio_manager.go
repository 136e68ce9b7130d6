package game

import (
	"log"

	"github.com/decker502/antchain/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 按名称播放音效和背景音乐（play/pause/stop/resume）
//   - 从 SettingsManager 读取音量和开关
//   - 未注册的音效只记录错误，不中断调用方
type AudioManager struct {
	cueBank         *CueBank
	settingsManager *SettingsManager         // 可为 nil，使用默认音量
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
	musicPlayers    map[string]*audio.Player // 背景音乐播放器缓存
	currentMusic    *audio.Player
	currentMusicID  string
	missing         map[string]bool // 已报告过的缺失音效，避免每帧刷屏
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - bank: 音效资源库
//   - sm: SettingsManager 实例（可为 nil）
func NewAudioManager(bank *CueBank, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		cueBank:         bank,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		musicPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
	}
}

// PlaySound 播放音效
// 音效使用 SoundVolume 控制音量，单次播放
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getPlayer(soundID, config.CueSound, am.soundPlayers)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 播放背景音乐（循环），同一时间只有一首
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		// 记住曲目，重新开启音乐时可以恢复
		am.StopMusic()
		am.currentMusicID = musicID
		return false
	}

	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.getPlayer(musicID, config.CueMusic, am.musicPlayers)
	if player == nil {
		return false
	}

	volume := am.getMusicVolume()
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID
	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
	}
	am.currentMusic = nil
	am.currentMusicID = ""
}

// PauseMusic 暂停当前背景音乐
func (am *AudioManager) PauseMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
	}
}

// ResumeMusic 恢复当前背景音乐
func (am *AudioManager) ResumeMusic() {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return
	}
	if am.currentMusic != nil {
		am.currentMusic.Play()
		return
	}
	// 音乐被关闭期间只记住了曲目
	if am.currentMusicID != "" {
		am.PlayMusic(am.currentMusicID)
	}
}

// CurrentMusicID 返回当前（或暂停中）的背景音乐ID
func (am *AudioManager) CurrentMusicID() string {
	return am.currentMusicID
}

// SetMasterVolume 设置总音量，立即应用到音乐和已缓存的音效播放器
func (am *AudioManager) SetMasterVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetMasterVolume(volume)
	}
	music, sound := am.getMusicVolume(), am.getSoundVolume()
	for _, player := range am.musicPlayers {
		player.SetVolume(music)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(sound)
	}
}

// SetMusicVolume 设置音乐音量并立即应用
func (am *AudioManager) SetMusicVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	volume = am.getMusicVolume()
	for _, player := range am.musicPlayers {
		player.SetVolume(volume)
	}
}

// SetSoundVolume 设置音效音量，影响后续播放的所有音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	volume = am.getSoundVolume()
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// SetMusicEnabled 开关背景音乐
func (am *AudioManager) SetMusicEnabled(enabled bool) {
	if am.settingsManager != nil {
		am.settingsManager.SetMusicEnabled(enabled)
	}
	if enabled {
		am.ResumeMusic()
	} else {
		am.PauseMusic()
	}
}

// SetSoundEnabled 开关音效
func (am *AudioManager) SetSoundEnabled(enabled bool) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundEnabled(enabled)
	}
}

// PreloadSounds 预先合成音效，避免首次播放卡顿
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	for _, id := range soundIDs {
		am.getPlayer(id, config.CueSound, am.soundPlayers)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundIDs))
}

// getPlayer 获取或创建播放器；失败时记录一次错误并返回 nil
func (am *AudioManager) getPlayer(cueID string, kind config.CueKind, cache map[string]*audio.Player) *audio.Player {
	if player, ok := cache[cueID]; ok {
		return player
	}

	if am.cueBank == nil || !am.cueBank.Has(cueID) {
		am.reportMissing(cueID, "not registered")
		return nil
	}
	if k, _ := am.cueBank.Kind(cueID); k != kind {
		am.reportMissing(cueID, "registered as "+string(k))
		return nil
	}

	player, err := am.cueBank.NewPlayer(cueID)
	if err != nil {
		am.reportMissing(cueID, err.Error())
		return nil
	}
	cache[cueID] = player
	return player
}

func (am *AudioManager) reportMissing(cueID, reason string) {
	if am.missing[cueID] {
		return
	}
	am.missing[cueID] = true
	log.Printf("[AudioManager] 错误: 音效 %s 不可用: %s", cueID, reason)
}

// getMusicVolume 实际音乐音量 = 总音量 × 音乐音量
func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		s := am.settingsManager.GetSettings()
		return s.MasterVolume * s.MusicVolume
	}
	return 0.7
}

// getSoundVolume 实际音效音量 = 总音量 × 音效音量
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		s := am.settingsManager.GetSettings()
		return s.MasterVolume * s.SoundVolume
	}
	return 0.8
}
