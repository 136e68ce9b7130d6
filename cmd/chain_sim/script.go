package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decker502/antchain/pkg/systems"
)

// parseScript 解析输入脚本
//
// 格式：逗号分隔的步骤，每步是用 + 连接的动作，可带 *N 重复 N 帧，例如
//
//	right*120, right+jump, right*60, select, cycle-left, select, tower*1, idle*30
//
// 动作：idle right left jump select cycle-left cycle-right tower bridge settings restart continue
func parseScript(src string) ([]systems.FrameInput, error) {
	var frames []systems.FrameInput

	for _, raw := range strings.Split(src, ",") {
		step := strings.TrimSpace(raw)
		if step == "" {
			continue
		}

		count := 1
		if i := strings.LastIndex(step, "*"); i >= 0 {
			n, err := strconv.Atoi(strings.TrimSpace(step[i+1:]))
			if err != nil || n < 1 {
				return nil, fmt.Errorf("step %q: invalid repeat count", step)
			}
			count = n
			step = strings.TrimSpace(step[:i])
		}

		var in systems.FrameInput
		for _, action := range strings.Split(step, "+") {
			if err := applyAction(&in, strings.TrimSpace(action)); err != nil {
				return nil, fmt.Errorf("step %q: %w", raw, err)
			}
		}

		for i := 0; i < count; i++ {
			frames = append(frames, in)
		}
	}
	return frames, nil
}

func applyAction(in *systems.FrameInput, action string) error {
	switch action {
	case "idle":
	case "right":
		in.MoveAxis = 1
	case "left":
		in.MoveAxis = -1
	case "jump":
		in.Jump = true
	case "select":
		in.Select = true
	case "cycle-left":
		in.Left = true
	case "cycle-right":
		in.Right = true
	case "tower":
		in.Tower = true
	case "bridge":
		in.Bridge = true
	case "settings":
		in.Settings = true
	case "restart":
		in.Restart = true
	case "continue":
		in.Continue = true
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	return nil
}
