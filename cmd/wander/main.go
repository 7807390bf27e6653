// Package main provides the headless simulation runner: it loads
// configuration and generated content, builds one session, and drives
// the frame loop until interrupted or until a replay script finishes.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/jcoghill/wander/internal/config"
	"github.com/jcoghill/wander/internal/content"
	"github.com/jcoghill/wander/internal/game/check"
	"github.com/jcoghill/wander/internal/game/sim"
	"github.com/jcoghill/wander/internal/observability"
	"github.com/jcoghill/wander/internal/replay"
	"github.com/jcoghill/wander/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	contentDir := flag.String("content", "", "content directory override; empty = use config")
	scriptPath := flag.String("script", "", "replay script to drive instead of running live; empty = run live")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	dir := cfg.Content.Dir
	if *contentDir != "" {
		dir = *contentDir
	}

	loadStart := time.Now()
	cat, err := content.Load(dir, logger)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}
	logger.Info("content ready", zap.Duration("elapsed", time.Since(loadStart)))

	src := check.NewCryptoSource()
	session := sim.New(cat, sim.Options{
		Width:            cfg.World.Width,
		Height:           cfg.World.Height,
		UIBand:           cfg.World.UIBand,
		StartingGold:     cfg.Sim.StartingGold,
		ObstaclesPerZone: cfg.World.ObstaclesPerZone,
	}, src, logger)

	startMainQuest(session, logger)

	if *scriptPath != "" {
		script, err := replay.LoadFile(*scriptPath)
		if err != nil {
			logger.Fatal("loading replay script", zap.Error(err))
		}
		replay.Drive(session, script, replay.DefaultDT)
		for _, line := range session.Feed().Lines() {
			logger.Info("feed", zap.String("line", line))
		}
		logger.Info("replay finished",
			zap.Int("steps", len(script.Steps)),
			zap.Duration("elapsed", time.Since(start)))
		return
	}

	loop := sim.NewLoop(session, cfg.Sim.TickRate, logger)
	loop.OnTick(newFeedStreamer(logger))

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("frame-loop", loop)

	logger.Info("session running",
		zap.Int("tick_rate", cfg.Sim.TickRate),
		zap.Duration("startup", time.Since(start)))
	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("lifecycle error", zap.Error(err))
	}
}

// startMainQuest kicks off the first main-line quest through the same
// input surface a player would use, so the live session has a goal from
// the first frame. Content without a main quest runs as a sandbox.
func startMainQuest(s *sim.Simulation, logger *zap.Logger) {
	main, ok := s.Tracker().Main()
	if !ok {
		logger.Info("content has no main quest, running as sandbox")
		return
	}
	s.Apply(sim.Action{Kind: sim.ActionOpenQuestLog})
	s.Apply(sim.Action{Kind: sim.ActionPickQuest, ID: main.Def.ID})
	s.Apply(sim.Action{Kind: sim.ActionCloseOverlay})
}

// newFeedStreamer returns a tick callback that logs each feed line once
// as it appears. The feed drops lines from the front and ages them out,
// so new lines are found by matching the longest previously seen suffix
// against the current head.
func newFeedStreamer(logger *zap.Logger) func(*sim.Simulation) {
	var prev []string
	return func(s *sim.Simulation) {
		cur := s.Feed().Lines()
		from := 0
		for i := len(cur); i > 0; i-- {
			if hasSuffix(prev, cur[:i]) {
				from = i
				break
			}
		}
		for _, line := range cur[from:] {
			logger.Info("feed", zap.String("line", line))
		}
		prev = cur
	}
}

// hasSuffix reports whether tail is a suffix of lines.
func hasSuffix(lines, tail []string) bool {
	if len(tail) > len(lines) {
		return false
	}
	off := len(lines) - len(tail)
	for i, s := range tail {
		if lines[off+i] != s {
			return false
		}
	}
	return true
}
