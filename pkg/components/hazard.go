package components

// RainZoneComponent 雨区
// 队首第一次进入前处于休眠（不下雨）；被触发后立即降雨，之后干燥期与降雨期交替
type RainZoneComponent struct {
	Width  float64 // 格
	Height float64 // 格

	DryDuration  float64 // 干燥期时长（秒）
	RainDuration float64 // 降雨期时长（秒）

	Active  bool    // 是否已被队首触发
	Timer   float64 // 当前阶段已过时间
	Raining bool

	// SoakLimit 队首在雨中停留超过该时间则关卡失败
	SoakLimit float64

	// CuePlayed 本次降雨期是否已播放过雨声
	CuePlayed bool
}

// GoalZoneComponent 终点区域
type GoalZoneComponent struct {
	Width  float64
	Height float64

	// RequiredAnts 过关所需的最少队伍长度
	RequiredAnts int
}
