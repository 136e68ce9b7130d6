package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/antchain/pkg/app"
	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose = flag.Bool("verbose", false, "显示详细日志")
	level   = flag.String("level", "", "直接进入指定关卡（如 level_2）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，必须在任何配置加载之前
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Level:   *level,
	})
	if err != nil {
		// 非 verbose 模式下 log 已被丢弃，错误直接写到 stderr
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Ant Chain")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.GameTPS)
	// 关闭窗口时先保存设置
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
