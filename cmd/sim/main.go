package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/tomz197/cyberattack/internal/config"
	"github.com/tomz197/cyberattack/internal/game"
	"github.com/tomz197/cyberattack/internal/input"
	"github.com/tomz197/cyberattack/internal/loop"
)

const defaultTicks = 60 * config.TickRate

// settings is everything the simulation reads from the environment.
type settings struct {
	configPath string
	scriptPath string
	seed       int64
	ticks      int
	realtime   bool
	dump       bool
	level      log.Level
}

func main() {
	logger := newLogger()

	s, err := loadSettings()
	if err != nil {
		logger.Error("invalid environment", "err", err)
		os.Exit(1)
	}
	logger.SetLevel(s.level)

	if err := run(s, logger); err != nil {
		logger.Error("simulation failed", "err", err)
		os.Exit(1)
	}
}

// newLogger logs in colour on a terminal and as logfmt otherwise.
func newLogger() *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "sim",
		Formatter:       log.LogfmtFormatter,
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		opts.Formatter = log.TextFormatter
	}
	return log.NewWithOptions(os.Stderr, opts)
}

func loadSettings() (settings, error) {
	s := settings{
		configPath: config.GetEnv("SIM_CONFIG", ""),
		scriptPath: config.GetEnv("SIM_SCRIPT", ""),
	}

	seed, err := config.GetEnvInt("SIM_SEED", 0)
	if err != nil {
		return s, err
	}
	s.seed = int64(seed)
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}

	if s.ticks, err = config.GetEnvInt("SIM_TICKS", defaultTicks); err != nil {
		return s, err
	}
	if s.ticks < 0 {
		return s, fmt.Errorf("SIM_TICKS: must not be negative, got %d", s.ticks)
	}
	if s.realtime, err = config.GetEnvBool("SIM_REALTIME", false); err != nil {
		return s, err
	}
	if s.dump, err = config.GetEnvBool("SIM_DUMP", false); err != nil {
		return s, err
	}
	if s.level, err = log.ParseLevel(config.GetEnv("SIM_LOG_LEVEL", "info")); err != nil {
		return s, fmt.Errorf("SIM_LOG_LEVEL: %w", err)
	}
	return s, nil
}

func run(s settings, logger *log.Logger) error {
	cfg := config.Default()
	if s.configPath != "" {
		var err error
		if cfg, err = config.Load(s.configPath); err != nil {
			return err
		}
	}

	g, err := game.New(cfg, rand.New(rand.NewSource(s.seed)))
	if err != nil {
		return err
	}

	opts := loop.Options{
		MaxTicks:       s.ticks,
		StopOnGameOver: true,
		Logger:         logger,
	}
	if s.realtime {
		opts.TickTime = config.TickTime
	}
	if s.scriptPath != "" {
		if opts.Script, err = input.LoadScript(s.scriptPath); err != nil {
			return err
		}
		if last := opts.Script.LastTick(); s.ticks > 0 && last >= s.ticks {
			logger.Warn("script runs past the tick limit", "last_tick", last, "ticks", s.ticks)
		}
	}

	r := loop.New(g, opts)
	// Without a script nobody presses start.
	if opts.Script == nil {
		r.SendCommand(input.CommandStart)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("simulation", "run", r.ID(), "seed", s.seed, "ticks", s.ticks, "realtime", s.realtime)
	if err := r.Run(ctx); err != nil {
		return err
	}

	snap := r.Snapshot()
	logger.Info("summary",
		"phase", snap.Phase,
		"frame", snap.Frame,
		"score", snap.Score,
		"high_score", snap.HighScore,
		"kills", snap.Kills,
		"wave", snap.Wave,
		"hearts", snap.Player.Hearts,
	)

	if s.dump {
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("dump snapshot: %w", err)
		}
	}
	return nil
}
