package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"
)

// TestRealMain_ProfileStoppedOnError 测试出错返回时性能分析文件仍然写出
// 测试在包目录下运行，找不到 data/，数据加载必然失败
func TestRealMain_ProfileStoppedOnError(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := realMain([]string{"-profile", "cpu", "-profile-dir", dir}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1 (stderr: %s)", code, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "cpu.pprof")); err != nil {
		t.Errorf("cpu.pprof not written: %v", err)
	}
}

// TestRealMain_ExitCodes 测试参数错误的退出码
func TestRealMain_ExitCodes(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown profile", []string{"-profile", "gpu"}, 2},
		{"unknown flag", []string{"-nope"}, 2},
		{"missing data", []string{"-level", "level_1"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if got := realMain(tt.args, &stdout, &stderr); got != tt.want {
				t.Errorf("exit code = %d, want %d (stderr: %s)", got, tt.want, stderr.String())
			}
		})
	}
}
