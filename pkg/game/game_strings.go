package game

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/decker502/antchain/pkg/embedded"
)

// GameStringsPath 界面文本文件
const GameStringsPath = "data/strings.txt"

// GameStrings 界面文本字符串表
// 从 strings.txt 加载，支持通过键快速查询
type GameStrings struct {
	strings map[string]string // 键 -> 文本映射
}

// LoadGameStrings 从嵌入资源（未初始化时从磁盘）加载界面文本
func LoadGameStrings(path string) (*GameStrings, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open strings file %s: %w", path, err)
	}

	gs, err := ParseGameStrings(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read strings file %s: %w", path, err)
	}
	return gs, nil
}

// ParseGameStrings 解析文本表
//
// 文件格式：
//
//	[KEY]
//	文本内容
//
// 文本内容中的 {0} {1} 由 Format 替换
func ParseGameStrings(data []byte) (*GameStrings, error) {
	gs := &GameStrings{strings: make(map[string]string)}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	var currentKey string
	for scanner.Scan() {
		line := scanner.Text()

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentKey = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}

		if currentKey != "" {
			gs.strings[currentKey] = line
			currentKey = ""
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return gs, nil
}

// Get 根据键获取文本；键不存在时返回 "[key]"（调试用）
// nil 表也可以安全调用
func (gs *GameStrings) Get(key string) string {
	if gs != nil {
		if text, ok := gs.strings[key]; ok {
			return text
		}
	}
	return "[" + key + "]"
}

// Format 获取文本并按顺序替换 {0} {1} ... 占位符
func (gs *GameStrings) Format(key string, args ...any) string {
	text := gs.Get(key)
	for i, arg := range args {
		text = strings.ReplaceAll(text, fmt.Sprintf("{%d}", i), fmt.Sprint(arg))
	}
	return text
}

// Len 返回已加载的文本数量
func (gs *GameStrings) Len() int {
	if gs == nil {
		return 0
	}
	return len(gs.strings)
}
