// validate_levels 检查 data/levels 下所有关卡能否加载，以及是否可能通关
//
// 用法（在项目根目录运行）：
//
//	go run ./cmd/validate_levels
package main

import (
	"fmt"
	"os"

	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/types"
)

func main() {
	archetypes, err := config.LoadArchetypeConfig(config.ArchetypeConfigPath)
	if err != nil {
		fmt.Printf("❌ 蚂蚁种类配置加载失败: %v\n", err)
		os.Exit(1)
	}

	ids, err := config.ListLevels()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if len(ids) == 0 {
		fmt.Printf("❌ %s 下没有关卡\n", config.LevelConfigDir)
		os.Exit(1)
	}

	failed := 0
	for _, id := range ids {
		problems := checkLevel(id, archetypes)
		if len(problems) == 0 {
			fmt.Printf("✅ %s\n", id)
			continue
		}
		failed++
		for _, p := range problems {
			fmt.Printf("❌ %s: %s\n", id, p)
		}
	}

	fmt.Printf("关卡数量: %d, 有问题: %d\n", len(ids), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// checkLevel 返回关卡的所有问题，空表示通过
func checkLevel(id string, archetypes *config.ArchetypeConfig) []string {
	level, err := config.LoadLevelConfig(config.LevelPath(id))
	if err != nil {
		return []string{err.Error()}
	}

	var problems []string
	if level.ID != id {
		problems = append(problems, fmt.Sprintf("id %q 与文件名不一致", level.ID))
	}

	placements := level.Placements()
	for i, p := range placements {
		t, ok := types.ParseAntType(p.Type)
		if !ok {
			problems = append(problems, fmt.Sprintf("蚂蚁 %d: 未知种类 %q", i, p.Type))
			continue
		}
		if _, ok := archetypes.Lookup(t); !ok {
			problems = append(problems, fmt.Sprintf("蚂蚁 %d: 种类 %s 没有配置", i, p.Type))
		}
		if p.X < 0 || p.X > level.Width {
			problems = append(problems, fmt.Sprintf("蚂蚁 %d: x=%.1f 超出关卡宽度", i, p.X))
		}
	}

	// 队首也算一只
	if level.Goal.RequiredAnts > len(placements) {
		problems = append(problems, fmt.Sprintf("需要 %d 只蚂蚁，关卡里只有 %d 只",
			level.Goal.RequiredAnts, len(placements)))
	}
	if g := level.Goal; g.X-g.Width/2 < 0 || g.X+g.Width/2 > level.Width {
		problems = append(problems, "终点超出关卡宽度")
	}
	return problems
}
