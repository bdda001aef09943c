// Monitor server - orchestrates webcam capture, attentiveness inference, and WebSocket connections
package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/studywatch/platform/internal/activity"
	"github.com/studywatch/platform/internal/audio"
	"github.com/studywatch/platform/internal/camera"
	"github.com/studywatch/platform/internal/config"
	"github.com/studywatch/platform/internal/grpcclient"
	"github.com/studywatch/platform/internal/metrics"
	"github.com/studywatch/platform/internal/orchestrator"
	"github.com/studywatch/platform/internal/orchestrator/attention"
	"github.com/studywatch/platform/internal/orchestrator/emergency"
	"github.com/studywatch/platform/internal/orchestrator/feedback"
	"github.com/studywatch/platform/internal/orchestrator/history"
	"github.com/studywatch/platform/internal/server"
	"github.com/studywatch/platform/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// Setup structured logging
	var out io.Writer = os.Stdout
	if cfg.AppLogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.AppLogFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	// Connect to vision gRPC server
	vision, err := grpcclient.New(cfg.VisionAddr)
	if err != nil {
		slog.Error("failed to connect to vision server", "addr", cfg.VisionAddr, "error", err)
		os.Exit(1)
	}
	defer func() { _ = vision.Close() }()

	// Open session history
	sessions, err := store.Open(cfg.SessionDB)
	if err != nil {
		slog.Error("failed to open session store", "path", cfg.SessionDB, "error", err)
		os.Exit(1)
	}
	defer func() { _ = sessions.Close() }()

	// Open activity log
	activityLog, err := activity.NewLogger(cfg.ActivityLogFile)
	if err != nil {
		slog.Error("failed to open activity log", "path", cfg.ActivityLogFile, "error", err)
		os.Exit(1)
	}

	// Audio output for speech and the siren
	player, err := audio.NewPlayer()
	if err != nil {
		slog.Error("failed to initialize audio output", "error", err)
		os.Exit(1)
	}
	defer player.Close()

	speaker := feedback.NewSpeaker(vision, player, int32(cfg.SampleRate), cfg.SpeechMinInterval())
	speaker.SetEnabled(cfg.SpeechEnabled)
	defer speaker.Close()

	processor := attention.NewProcessor(vision, attention.Config{
		EARThreshold:     cfg.EARThreshold,
		MARThreshold:     cfg.MARThreshold,
		YawnMARThreshold: cfg.YawnMARThreshold,
		DrowsyFrames:     cfg.DrowsyFrames,
		YawnFrames:       cfg.YawnFrames,
		ShortAbsence:     cfg.ShortAbsence(),
		LongAbsence:      cfg.LongAbsence(),
		MaxHashDistance:  cfg.MaxHashDistance,
		StaticFrames:     cfg.StaticFrames(),
		MaxFaces:         int32(cfg.MaxFaces),
	})

	mtr := metrics.New()
	timeline := history.NewTimeline(orchestrator.HistoryMaxEntries)

	// Create orchestrator
	mgr := orchestrator.New(cfg, orchestrator.Deps{
		Camera:    camera.New(cfg.CameraDevice),
		Processor: processor,
		Speaker:   speaker,
		Emergency: emergency.NewController(player, speaker),
		Activity:  activityLog,
		Store:     sessions,
		History:   timeline,
		Metrics:   mtr,
	})

	// Create HTTP/WebSocket server
	srv := server.New(server.Deps{
		Monitor:      mgr,
		Activity:     activityLog,
		Sessions:     sessions,
		History:      timeline,
		BreakerState: func() string { return vision.BreakerState().String() },
		Metrics:      mtr.Handler(),
	})

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      srv.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("monitor server starting", "http", cfg.HTTPAddr, "vision", cfg.VisionAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("http server error", "error", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}

	mgr.Stop()
	slog.Info("shutdown complete")
}
