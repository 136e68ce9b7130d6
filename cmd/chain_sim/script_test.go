package main

import (
	"testing"

	"github.com/decker502/antchain/pkg/systems"
)

// TestParseScript 测试脚本解析
func TestParseScript(t *testing.T) {
	frames, err := parseScript("right*2, right+jump, idle, select, cycle-left, tower+bridge")
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}

	want := []systems.FrameInput{
		{MoveAxis: 1},
		{MoveAxis: 1},
		{MoveAxis: 1, Jump: true},
		{},
		{Select: true},
		{Left: true},
		{Tower: true, Bridge: true},
	}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d = %+v, want %+v", i, frames[i], want[i])
		}
	}
}

// TestParseScript_Errors 测试非法脚本
func TestParseScript_Errors(t *testing.T) {
	tests := []string{
		"fly",
		"right*0",
		"right*x",
		"right+dance*3",
	}
	for _, src := range tests {
		if _, err := parseScript(src); err == nil {
			t.Errorf("parseScript(%q) should fail", src)
		}
	}
}

// TestParseScript_Empty 测试空脚本
func TestParseScript_Empty(t *testing.T) {
	frames, err := parseScript(" , ")
	if err != nil || len(frames) != 0 {
		t.Errorf("parseScript(empty) = %v, %v", frames, err)
	}
}
