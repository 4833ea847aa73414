package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/controller"
	"github.com/vovakirdan/tui-arkanoid/internal/engine"
)

var (
	flagSimLevel    int
	flagSimDuration float64
	flagSimStep     float64
	flagSimJSON     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with an autopilot paddle",
	Long: `Simulate a game without a terminal. The paddle follows the ball and
launches it whenever it rests on the paddle. Runs are deterministic: the
same flags always print the same result.

Examples:
  arkanoid sim
  arkanoid sim --level 2 --duration 120000
  arkanoid sim --step 5 --json
  arkanoid sim --debug --duration 5000   # log every predicted bounce`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimLevel, "level", -1, "Start level (1-based); default plays a new game")
	simCmd.Flags().Float64Var(&flagSimDuration, "duration", 60000, "Simulated wall time in ms")
	simCmd.Flags().Float64Var(&flagSimStep, "step", 16, "Frame interval in ms")
	simCmd.Flags().BoolVar(&flagSimJSON, "json", false, "Print the result as JSON")
}

// simLevel converts the 1-based --level flag into a level index. Negative
// values mean a new game from the first level.
func simLevel(flag int) (int, error) {
	switch {
	case flag < 0:
		return -1, nil
	case flag == 0:
		return 0, fmt.Errorf("--level is 1-based, got 0")
	default:
		return flag - 1, nil
	}
}

func runSim(_ *cobra.Command, _ []string) error {
	level, err := simLevel(flagSimLevel)
	if err != nil {
		return err
	}
	cfg, set, pack, err := loadGame()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, "arkanoid-sim")

	rec := &audio.Recorder{}
	sched := audio.NewScheduler(rec, true, logger)
	eng := engine.New(cfg, set, engine.WithLogger(logger))
	ctrl := controller.New(eng, sched, cfg, controller.WithLogger(logger))

	res, err := ctrl.Autoplay(controller.AutoplayOptions{
		Level:    level,
		Duration: flagSimDuration,
		Step:     flagSimStep,
	})
	if err != nil {
		return err
	}

	counts := make(map[audio.Sample]int)
	for _, p := range rec.Take() {
		counts[p.Sample]++
	}

	if flagSimJSON {
		return printSimJSON(os.Stdout, pack, res, counts)
	}
	printSim(os.Stdout, pack, res, counts)
	return nil
}

func printSim(w io.Writer, pack string, res controller.AutoplayResult, counts map[audio.Sample]int) {
	level := "-"
	if res.LevelCount > 0 && res.Level >= 0 {
		level = fmt.Sprintf("%d/%d", res.Level+1, res.LevelCount)
	}
	fmt.Fprintf(w, "Pack:        %s\n", pack)
	fmt.Fprintf(w, "Wall time:   %.0f ms (%d frames)\n", res.Elapsed, res.Frames)
	fmt.Fprintf(w, "Model time:  %.0f ms\n", res.Time)
	fmt.Fprintf(w, "State:       %s\n", res.State)
	fmt.Fprintf(w, "Level:       %s\n", level)
	fmt.Fprintf(w, "Score:       %d\n", res.Score)
	fmt.Fprintf(w, "Remaining:   %d bricks\n", res.Remaining)
	fmt.Fprintf(w, "Ball speed:  %.3f\n", res.Speed)
	fmt.Fprintf(w, "Finished:    %v\n", res.Finished)
	fmt.Fprintln(w, "Sounds:")
	for _, s := range audio.Samples {
		if n := counts[s]; n > 0 {
			fmt.Fprintf(w, "  %-9s %d\n", s, n)
		}
	}
}

func printSimJSON(w io.Writer, pack string, res controller.AutoplayResult, counts map[audio.Sample]int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Pack   string                    `json:"pack"`
		Result controller.AutoplayResult `json:"result"`
		Sounds map[audio.Sample]int      `json:"sounds"`
	}{pack, res, counts})
}
