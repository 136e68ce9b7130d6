package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadChainConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *ChainConfig)
	}{
		{
			name: "完整配置",
			yamlContent: `
followThreshold: 5
towerOffset: 0.8
joinOffset: 2
gravity: 25
pixelsPerUnit: 40
cameraFollowRate: 3
highlightTint: "#00FF00"
`,
			validate: func(t *testing.T, cfg *ChainConfig) {
				if cfg.FollowThreshold != 5 {
					t.Errorf("expected followThreshold = 5, got %f", cfg.FollowThreshold)
				}
				if cfg.TowerOffset != 0.8 {
					t.Errorf("expected towerOffset = 0.8, got %f", cfg.TowerOffset)
				}
				if cfg.JoinOffset != 2 {
					t.Errorf("expected joinOffset = 2, got %f", cfg.JoinOffset)
				}
			},
		},
		{
			name:        "缺省字段使用默认值",
			yamlContent: "gravity: 20\n",
			validate: func(t *testing.T, cfg *ChainConfig) {
				if cfg.FollowThreshold != 6.5 {
					t.Errorf("expected default followThreshold = 6.5, got %f", cfg.FollowThreshold)
				}
				if cfg.JoinOffset != 3 {
					t.Errorf("expected default joinOffset = 3, got %f", cfg.JoinOffset)
				}
				if cfg.Gravity != 20 {
					t.Errorf("expected gravity = 20, got %f", cfg.Gravity)
				}
			},
		},
		{
			name:        "负阈值",
			yamlContent: "followThreshold: -1\n",
			wantErr:     true,
			errContains: "followThreshold",
		},
		{
			name:        "像素比例为0",
			yamlContent: "pixelsPerUnit: 0\n",
			wantErr:     true,
			errContains: "pixelsPerUnit",
		},
		{
			name:        "非法颜色",
			yamlContent: "highlightTint: yellow\n",
			wantErr:     true,
			errContains: "highlightTint",
		},
		{
			name:        "非法YAML",
			yamlContent: "followThreshold: [1, 2\n",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "chain.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp file: %v", err)
			}

			cfg, err := LoadChainConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadChainConfig_FileNotFound(t *testing.T) {
	_, err := LoadChainConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#FFD84A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.R != 0xFF || c.G != 0xD8 || c.B != 0x4A || c.A != 0xFF {
		t.Errorf("unexpected color %+v", c)
	}

	c, err = ParseHexColor("10203080")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.R != 0x10 || c.G != 0x20 || c.B != 0x30 || c.A != 0x80 {
		t.Errorf("unexpected color %+v", c)
	}

	for _, bad := range []string{"", "#FFF", "#GGGGGG", "#1234567"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", bad)
		}
	}
}
