package systems

import (
	"log"

	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/ecs"
	"github.com/decker502/antchain/pkg/game"
)

const (
	RainCueID = "SOUND_RAIN"
	LoseCueID = "SOUND_LOSE"
)

// RainSystem 雨区
//
//   - 雨区在队首第一次进入前保持休眠；被触发时立即开始降雨并播放雨声
//   - 触发之后在干燥期和降雨期之间交替
//   - 降雨期内第一次有队列中的蚂蚁进入时播放雨声（每个降雨期一次）
//   - 队首在降雨区中累计淋雨时间，超过该雨区的上限则关卡失败；离开雨区后清零
//   - 有蚂蚁叠在队首头顶时，队首不会被淋湿
type RainSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	chain         *AntChainSystem
	cues          CuePlayer
}

// NewRainSystem 创建雨区系统，cues 可为 nil
func NewRainSystem(em *ecs.EntityManager, gs *game.GameState, chain *AntChainSystem, cues CuePlayer) *RainSystem {
	return &RainSystem{
		entityManager: em,
		gameState:     gs,
		chain:         chain,
		cues:          cues,
	}
}

// Update 推进雨区周期并结算淋雨
func (s *RainSystem) Update(dt float64) {
	head := s.chain.Head()
	zones := ecs.GetEntitiesWith2[*components.RainZoneComponent, *components.PositionComponent](s.entityManager)
	for _, id := range zones {
		zone, _ := ecs.GetComponent[*components.RainZoneComponent](s.entityManager, id)
		if !zone.Active {
			if head != 0 && s.inZone(head, id, zone) {
				s.activate(id, zone)
			}
			continue
		}
		s.advance(id, zone, dt)
	}

	members := s.chain.Members()
	for _, id := range zones {
		zone, _ := ecs.GetComponent[*components.RainZoneComponent](s.entityManager, id)
		if !zone.Raining || zone.CuePlayed {
			continue
		}
		for _, m := range members {
			if s.inZone(m, id, zone) {
				zone.CuePlayed = true
				if s.cues != nil {
					s.cues.PlaySound(RainCueID)
				}
				break
			}
		}
	}

	s.soakHead(zones, dt)
}

// activate 队首第一次进入：雨区开始降雨，本次降雨期的雨声随即播放
func (s *RainSystem) activate(id ecs.EntityID, zone *components.RainZoneComponent) {
	zone.Active = true
	zone.Raining = true
	zone.Timer = 0
	zone.CuePlayed = true
	if s.cues != nil {
		s.cues.PlaySound(RainCueID)
	}
	log.Printf("[RainSystem] 雨区 %d 被队首触发，开始降雨 (%.1fs)", id, zone.RainDuration)
}

// advance 推进单个雨区的干湿周期
func (s *RainSystem) advance(id ecs.EntityID, zone *components.RainZoneComponent, dt float64) {
	zone.Timer += dt
	if zone.Raining {
		if zone.Timer >= zone.RainDuration {
			zone.Raining = false
			zone.Timer = 0
		}
		return
	}
	if zone.Timer >= zone.DryDuration {
		zone.Raining = true
		zone.Timer = 0
		zone.CuePlayed = false
		log.Printf("[RainSystem] 雨区 %d 开始降雨 (%.1fs)", id, zone.RainDuration)
	}
}

// soakHead 结算队首淋雨
func (s *RainSystem) soakHead(zones []ecs.EntityID, dt float64) {
	head := s.chain.Head()
	ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, head)
	if !ok {
		return
	}

	var wetZone *components.RainZoneComponent
	for _, id := range zones {
		zone, _ := ecs.GetComponent[*components.RainZoneComponent](s.entityManager, id)
		if zone.Raining && s.inZone(head, id, zone) {
			wetZone = zone
			break
		}
	}

	if wetZone == nil || s.sheltered() {
		ant.SoakTime = 0
		return
	}

	ant.SoakTime += dt
	if ant.SoakTime > wetZone.SoakLimit {
		log.Printf("[RainSystem] 队首 %d 被淋透 (%.2fs > %.2fs)", head, ant.SoakTime, wetZone.SoakLimit)
		if s.gameState.EndGame(game.ResultLose) && s.cues != nil {
			s.cues.PlaySound(LoseCueID)
		}
	}
}

// sheltered 队首头顶是否有叠塔的蚂蚁
func (s *RainSystem) sheltered() bool {
	for _, id := range s.chain.Members() {
		if ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, id); ok && ant.TowerMode {
			return true
		}
	}
	return false
}

// inZone 实体碰撞盒是否与雨区重叠
func (s *RainSystem) inZone(id, zoneID ecs.EntityID, zone *components.RainZoneComponent) bool {
	pos, ok1 := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	col, ok2 := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id)
	zonePos, ok3 := ecs.GetComponent[*components.PositionComponent](s.entityManager, zoneID)
	if !ok1 || !ok2 || !ok3 {
		return false
	}
	return components.Overlaps(pos, col, zonePos, &components.ColliderComponent{Width: zone.Width, Height: zone.Height})
}

// SoakRatio 队首淋雨进度 0~1（界面显示用）
func (s *RainSystem) SoakRatio() float64 {
	ant, ok := ecs.GetComponent[*components.AntComponent](s.entityManager, s.chain.Head())
	if !ok || ant.SoakTime == 0 {
		return 0
	}

	limit := 0.0
	for _, id := range ecs.GetEntitiesWith1[*components.RainZoneComponent](s.entityManager) {
		zone, _ := ecs.GetComponent[*components.RainZoneComponent](s.entityManager, id)
		if zone.Raining && s.inZone(s.chain.Head(), id, zone) {
			limit = zone.SoakLimit
			break
		}
	}
	if limit <= 0 {
		return 0
	}
	r := ant.SoakTime / limit
	if r > 1 {
		r = 1
	}
	return r
}
