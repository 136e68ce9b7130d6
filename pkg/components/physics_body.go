package components

// BodyMode 物理体的模拟方式
type BodyMode int

const (
	// BodyKinematic 运动学刚体：不受重力，通常作为触发器
	BodyKinematic BodyMode = iota
	// BodySimulated 模拟刚体：受重力影响，碰撞体为实心
	BodySimulated
)

// String 返回模式名称（日志用）
func (m BodyMode) String() string {
	if m == BodySimulated {
		return "simulated"
	}
	return "kinematic"
}

// PhysicsBodyComponent 物理宿主读写的刚体状态
// 核心逻辑只通过这里读写速度、重力系数和约束标志
type PhysicsBodyComponent struct {
	Mode BodyMode

	VelocityX float64 // 格/秒
	VelocityY float64 // 格/秒，向上为正

	// GravityScale 重力系数，0 表示不受重力
	GravityScale float64

	// IsTrigger 为 true 时碰撞体只检测重叠，不阻挡
	IsTrigger bool

	// FreezePosition / FreezeRotation 约束标志（搭桥时锁定）
	FreezePosition bool
	FreezeRotation bool

	// Rotation 旋转角（弧度），叠塔时重置为 0
	Rotation float64

	// OnGround 本帧是否站在地面或平台上
	OnGround bool
}

// Simulate 切换为模拟刚体：开启重力，碰撞体变为实心
func (b *PhysicsBodyComponent) Simulate() {
	b.Mode = BodySimulated
	b.GravityScale = 1
	b.IsTrigger = false
}
