// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "strings"

// AntType 定义蚂蚁的种类（原型标签）
type AntType int

const (
	// AntUnknown 未知种类
	AntUnknown AntType = iota
	// AntWorker 工蚁：标准属性
	AntWorker
	// AntSoldier 兵蚁：移动慢，跳得低，叠塔更稳
	AntSoldier
	// AntScout 侦察蚁：移动快，跳得高
	AntScout
	// AntCarpenter 木匠蚁：搭桥专家
	AntCarpenter
)

// String 返回蚂蚁种类的字符串表示
func (a AntType) String() string {
	switch a {
	case AntWorker:
		return "worker"
	case AntSoldier:
		return "soldier"
	case AntScout:
		return "scout"
	case AntCarpenter:
		return "carpenter"
	default:
		return "unknown"
	}
}

// ParseAntType 将配置文件中的名称解析为 AntType
// 名称不区分大小写；无法识别时返回 AntUnknown 和 false
func ParseAntType(name string) (AntType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "worker":
		return AntWorker, true
	case "soldier":
		return AntSoldier, true
	case "scout":
		return AntScout, true
	case "carpenter":
		return AntCarpenter, true
	default:
		return AntUnknown, false
	}
}
