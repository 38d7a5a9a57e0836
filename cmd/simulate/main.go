// simulate 以无界面方式运行一局游戏并输出统计报告
//
// 用法：
//
//	go run ./cmd/simulate -frames 3600 -fire-every 10 -sweep-every 0
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/game"
	"github.com/decker502/gyruss/pkg/session"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "YAML 配置文件（默认使用内置默认配置）")
	frames     = flag.Int("frames", 3600, "最多运行的帧数")
	tps        = flag.Int("tps", 60, "模拟的每秒帧数")
	fireEvery  = flag.Int("fire-every", 10, "每隔多少帧开火一次（0 表示不开火）")
	sweepEvery = flag.Int("sweep-every", 0, "每隔多少帧换向一次（0 表示原地不动）")
)

// runOptions 一次模拟的参数
type runOptions struct {
	frames     int
	tps        int
	fireEvery  int
	sweepEvery int
	verbose    bool
}

// runReport 模拟结果
type runReport struct {
	framesRun        int
	physicsSteps     int
	elapsed          float64
	score            int
	scoreEvents      int
	shotsFired       int
	enemiesSpawned   int
	enemiesDestroyed int
	expired          int
	cleared          bool
	clearedFrame     int
	wavesRemaining   int
	accuracy         float64
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	opts := runOptions{
		frames:     *frames,
		tps:        *tps,
		fireEvery:  *fireEvery,
		sweepEvery: *sweepEvery,
		verbose:    *verbose,
	}
	if err := opts.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	report, err := run(cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(formatReport(cfg, opts, report))
}

func (o runOptions) validate() error {
	if o.frames <= 0 {
		return fmt.Errorf("-frames must be > 0")
	}
	if o.tps <= 0 {
		return fmt.Errorf("-tps must be > 0")
	}
	if o.fireEvery < 0 || o.sweepEvery < 0 {
		return fmt.Errorf("-fire-every and -sweep-every must be >= 0")
	}
	return nil
}

// run 运行一局直到清场或达到帧数上限
func run(cfg *config.GameConfig, opts runOptions) (runReport, error) {
	ledger := game.NewScoreLedger()
	pilot := newScriptedPilot(opts.fireEvery, opts.sweepEvery)

	sess, err := session.New(cfg, pilot, ledger)
	if err != nil {
		return runReport{}, err
	}
	defer sess.Close()
	sess.SetVerbose(opts.verbose)

	var report runReport
	unsubscribe := ledger.Subscribe(func(total int) {
		report.scoreEvents++
	})
	defer unsubscribe()

	dt := 1.0 / float64(opts.tps)
	for report.framesRun < opts.frames {
		pilot.Advance()
		sess.Frame(dt)
		report.framesRun++

		if sess.State().Cleared {
			report.cleared = true
			report.clearedFrame = pilot.Frame()
			break
		}
	}

	state := sess.State()
	report.physicsSteps = state.PhysicsSteps
	report.elapsed = state.ElapsedTime
	report.score = ledger.Total()
	report.shotsFired = state.ShotsFired
	report.enemiesSpawned = state.EnemiesSpawned
	report.enemiesDestroyed = state.EnemiesDestroyed
	report.expired = state.ProjectilesExpired
	report.wavesRemaining = sess.Waves().WavesRemaining()
	report.accuracy = state.Accuracy()
	return report, nil
}

func formatReport(cfg *config.GameConfig, opts runOptions, r runReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Headless Session Report ===\n")
	fmt.Fprintf(&b, "waves=%d x %d  frames=%d tps=%d fire_every=%d sweep_every=%d\n\n",
		cfg.Waves.Count, cfg.Waves.EnemiesPerWave, opts.frames, opts.tps, opts.fireEvery, opts.sweepEvery)

	fmt.Fprintf(&b, "frames run        %d (%d physics steps, %.2fs)\n", r.framesRun, r.physicsSteps, r.elapsed)
	fmt.Fprintf(&b, "score             %d (%d award events)\n", r.score, r.scoreEvents)
	fmt.Fprintf(&b, "shots fired       %d (%d expired, accuracy %.1f%%)\n", r.shotsFired, r.expired, r.accuracy*100)
	fmt.Fprintf(&b, "enemies           %d spawned, %d destroyed\n", r.enemiesSpawned, r.enemiesDestroyed)
	if r.cleared {
		fmt.Fprintf(&b, "result            CLEARED at frame %d\n", r.clearedFrame)
	} else {
		fmt.Fprintf(&b, "result            not cleared (%d waves remaining)\n", r.wavesRemaining)
	}
	return b.String()
}
