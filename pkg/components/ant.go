package components

import (
	"github.com/decker502/antchain/pkg/ecs"
	"github.com/decker502/antchain/pkg/types"
)

// AntComponent 蚂蚁实体的核心数据
//
// Predecessor 是非拥有的关系引用：修改它不会销毁任何实体。
// 值为 0 表示没有前驱（队首或未入队）。
type AntComponent struct {
	// Archetype 蚂蚁种类，创建时确定，之后不变
	Archetype types.AntType

	// Direction 朝向：1 向右，-1 向左
	Direction int

	// Speed 移动速度（格/秒）
	// 入队后与队首保持一致，离队时清零
	Speed float64

	// BaseSpeed 种类决定的基础速度（格/秒），只用于成为队首时恢复速度
	BaseSpeed float64

	// JumpImpulse 起跳初速度（格/秒）
	JumpImpulse float64

	// Controllable 是否由玩家直接控制（只有队首为 true）
	Controllable bool

	// Joined 是否已加入蚂蚁队列
	Joined bool

	// Predecessor 跟随的前一只蚂蚁
	Predecessor ecs.EntityID

	// Following 本帧是否在追赶前驱（距离超过阈值）
	Following bool

	// TowerMode 叠塔模式：固定在队首正上方
	TowerMode bool

	// OnBridge 搭桥模式：冻结在原地，不参与跟随
	OnBridge bool

	// CueID 成为队首时播放的音效ID
	CueID string

	// SoakTime 在雨中累计停留的时间（秒）
	SoakTime float64
}

// IsHead 是否为队首
func (a *AntComponent) IsHead() bool {
	return a.Joined && a.Controllable
}

// IsAttached 是否处于被前驱牵引的状态
func (a *AntComponent) IsAttached() bool {
	return a.Joined && a.Predecessor != 0
}
