package utils

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// TextAlign 文字水平对齐方式
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

var defaultFace text.Face

// DefaultFace 返回界面默认字体（basicfont 7x13，只支持 ASCII）
func DefaultFace() text.Face {
	if defaultFace == nil {
		defaultFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return defaultFace
}

// DrawText 在屏幕上绘制一行文字，(x, y) 为文字顶部的对齐点
func DrawText(screen *ebiten.Image, str string, face text.Face, x, y float64, align TextAlign, clr color.Color) {
	if str == "" || face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	switch align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(screen, str, face, op)
}

// MeasureText 测量文字宽度（像素）
func MeasureText(str string, face text.Face) float64 {
	if str == "" || face == nil {
		return 0
	}
	width, _ := text.Measure(str, face, 0)
	return width
}

// WrapText 按单词把文本折成不超过 maxWidth 的多行
// 单个单词超宽时单独成行
func WrapText(str string, face text.Face, maxWidth float64) []string {
	if str == "" || face == nil || maxWidth <= 0 || MeasureText(str, face) <= maxWidth {
		return []string{str}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(str) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && MeasureText(candidate, face) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
