package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// BytesPerFrame 16-bit 立体声每帧字节数（Ebitengine 的 PCM 格式）
const BytesPerFrame = 4

// RenderPCM 把有限长度的流完整渲染为 16-bit 小端立体声 PCM
func RenderPCM(s beep.Streamer) ([]byte, error) {
	out := make([]byte, 0, 4096)
	buf := make([][2]float64, 512)

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = appendFrame(out, buf[i])
		}
		if !ok {
			break
		}
	}

	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// appendFrame 写入一帧（左右声道各一个 int16）
func appendFrame(out []byte, frame [2]float64) []byte {
	for _, v := range frame {
		out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(v)))
	}
	return out
}

// toInt16 将 [-1, 1] 的浮点样本量化为 int16，超出范围时截断
func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
