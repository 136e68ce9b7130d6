// chain_sim 无窗口运行一个关卡：按脚本回放输入，输出结局和队列状态
//
// 用法（在项目根目录运行，直接读取 data/）：
//
//	go run ./cmd/chain_sim -level level_1 -script "right*300, right+jump, right*200"
//	go run ./cmd/chain_sim -level level_2 -profile cpu
//	go run ./cmd/chain_sim -cues
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/antchain/pkg/app"
	"github.com/decker502/antchain/pkg/components"
	"github.com/decker502/antchain/pkg/config"
	"github.com/decker502/antchain/pkg/ecs"
	"github.com/decker502/antchain/pkg/game"
	"github.com/decker502/antchain/pkg/scenes"
	"github.com/decker502/antchain/pkg/systems"
	"github.com/pkg/profile"
)

// options 命令行参数
type options struct {
	levelID    string
	script     string
	maxFrames  int
	profile    string
	profileDir string
	listCues   bool
	verbose    bool
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain 返回进程退出码；os.Exit 只在 main 中调用，保证性能分析的 Stop 先执行
func realMain(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("chain_sim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.levelID, "level", "level_1", "要运行的关卡ID")
	fs.StringVar(&opts.script, "script", "right*900", "输入脚本（见 parseScript）")
	fs.IntVar(&opts.maxFrames, "frames", 3600, "最多运行的帧数")
	fs.StringVar(&opts.profile, "profile", "", "性能分析: cpu 或 mem")
	fs.StringVar(&opts.profileDir, "profile-dir", ".", "性能分析文件输出目录")
	fs.BoolVar(&opts.listCues, "cues", false, "离线合成所有音效并输出 PCM 大小，然后退出")
	fs.BoolVar(&opts.verbose, "verbose", false, "显示详细调试信息")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !opts.verbose {
		log.SetOutput(io.Discard)
	}

	switch opts.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.profileDir), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(opts.profileDir), profile.NoShutdownHook).Stop()
	default:
		fmt.Fprintf(stderr, "unknown -profile %q (want cpu or mem)\n", opts.profile)
		return 2
	}

	data, err := app.LoadGameData()
	if err != nil {
		fmt.Fprintf(stderr, "load data: %v\n", err)
		return 1
	}

	if opts.listCues {
		if err := renderCues(stdout, data.Cues); err != nil {
			fmt.Fprintf(stderr, "render cues: %v\n", err)
			return 1
		}
		return 0
	}

	frames, err := parseScript(opts.script)
	if err != nil {
		fmt.Fprintf(stderr, "parse script: %v\n", err)
		return 2
	}

	if err := run(stdout, data, frames, opts); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

// run 创建场景并回放脚本，直到关卡结束或达到帧数上限
func run(w io.Writer, data *app.GameData, frames []systems.FrameInput, opts options) error {
	script := systems.NewScriptedInput(frames)
	sm := game.NewSceneManager()
	sm.SetLevelOrder(data.Levels)

	ctx := &scenes.SceneContext{
		SceneManager: sm,
		Audio:        game.NewAudioManager(nil, nil),
		Strings:      data.Strings,
		Chain:        data.Chain,
		Archetypes:   data.Archetypes,
		Input:        script,
	}
	sm.SetSceneFactory(func(id string) (game.Scene, error) {
		return scenes.NewGameScene(ctx, id)
	})
	if !sm.LoadLevel(opts.levelID) {
		return fmt.Errorf("cannot load level %s", opts.levelID)
	}

	frame := 0
	for ; frame < opts.maxFrames; frame++ {
		scene, ok := sm.GetCurrentScene().(*scenes.GameScene)
		if !ok {
			return fmt.Errorf("unexpected scene type %T", sm.GetCurrentScene())
		}
		if scene.GameState().IsGameOver() {
			break
		}
		script.Advance()
		sm.Update(config.FixedDeltaTime)
	}

	report(w, sm.GetCurrentScene().(*scenes.GameScene), frame)
	return nil
}

// report 输出结局和队列中每只蚂蚁的状态
func report(w io.Writer, scene *scenes.GameScene, frames int) {
	gs := scene.GameState()
	level := scene.Level()
	chain := scene.Chain()

	fmt.Fprintf(w, "level:   %s (%s)\n", level.ID, level.Name)
	fmt.Fprintf(w, "frames:  %d (%.2fs simulated)\n", frames, gs.ElapsedTime)
	fmt.Fprintf(w, "result:  %s\n", gs.Result())
	fmt.Fprintf(w, "roster:  %d / %d\n", chain.Len(), level.Goal.RequiredAnts)

	em := scene.EntityManager()
	for i, id := range chain.Members() {
		ant, ok1 := ecs.GetComponent[*components.AntComponent](em, id)
		pos, ok2 := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok1 || !ok2 {
			continue
		}
		fmt.Fprintf(w, "  [%d] %-9s x=%6.2f y=%6.2f following=%-5t tower=%-5t bridge=%t\n",
			i, ant.Archetype, pos.X, pos.Y, ant.Following, ant.TowerMode, ant.OnBridge)
	}
}

// renderCues 不创建音频上下文，直接合成每个音效的 PCM
func renderCues(w io.Writer, cfg *config.AudioCueConfig) error {
	bank, err := game.NewCueBank(nil, cfg)
	if err != nil {
		return err
	}
	for _, id := range bank.IDs() {
		pcm, err := bank.PCM(id)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		kind, _ := bank.Kind(id)
		seconds := float64(len(pcm)) / 4 / float64(cfg.SampleRate)
		fmt.Fprintf(w, "%-16s %-6s %8d bytes  %.3fs\n", id, kind, len(pcm), seconds)
	}
	return nil
}
