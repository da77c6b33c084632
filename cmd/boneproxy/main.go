// Package main is the entry point for the headless bone proxy simulation.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/boneproxy/internal/config"
	"github.com/Faultbox/boneproxy/internal/game"
	"github.com/Faultbox/boneproxy/internal/logger"
	"github.com/Faultbox/boneproxy/internal/rig"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Bone Proxy Simulation ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("simulation error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("simulation finished normally")
}

func run(cfg *config.Config) error {
	r, err := rig.Load(cfg.Rig.Path)
	if err != nil {
		return err
	}

	sim := game.New(cfg, r)
	defer func() {
		if err := sim.Close(); err != nil {
			logger.Warn("close simulation", zap.Error(err))
		}
	}()

	if cfg.Record.Path != "" {
		rec, err := game.CreateRecorder(cfg.Record.Path)
		if err != nil {
			return err
		}
		sim.SetRecorder(rec)
		logger.Info("recording snapshots", zap.String("path", cfg.Record.Path))
	}

	var reloads <-chan string
	if cfg.Rig.Watch && cfg.Rig.Path != "" {
		w, err := rig.NewWatcher(cfg.Rig.Path)
		if err != nil {
			return fmt.Errorf("watch rig %s: %w", cfg.Rig.Path, err)
		}
		defer w.Close()
		reloads = w.Events
		go logWatchErrors(w.Errors)
		logger.Info("watching rig for changes", zap.String("path", cfg.Rig.Path))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sim.Run(ctx, cfg.Simulation.Frames, reloads); err != nil {
		return err
	}

	fmt.Printf("frames=%d shots=%d hits=%d colliders=%d\n",
		sim.Frames(), sim.Shooter().Shots(), sim.Hits(), sim.World().Colliders.Len())
	return nil
}

func logWatchErrors(errs <-chan error) {
	for err := range errs {
		logger.Warn("rig watcher error", zap.Error(err))
	}
}
