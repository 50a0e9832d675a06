package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/vi-pong/config"
)

func testLoggingConfig(dir string) config.LoggingConfig {
	return config.LoggingConfig{Enabled: true, Level: "info", Format: "console", Dir: dir}
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	log, logFile, err := setupLogging(config.Default().Logging)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if logFile != nil {
		t.Error("Expected nil log file when logging disabled")
		logFile.Close()
	}
	if log == nil {
		t.Fatal("Expected no-op logger, got nil")
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Expected no-op logger to drop everything")
	}
}

func TestSetupLogging_Enabled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, logFile, err := setupLogging(testLoggingConfig(dir))
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	defer logFile.Close()

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Expected logs directory to be created")
	}

	log.Info("test log message")
	log.Debug("filtered debug message")
	log.Sync()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "test log message") {
		t.Error("Expected log file to contain the info message")
	}
	if strings.Contains(string(data), "filtered debug message") {
		t.Error("Expected debug message to be filtered at info level")
	}
}

func TestSetupLogging_JSONFormat(t *testing.T) {
	cfg := testLoggingConfig(t.TempDir())
	cfg.Format = "json"
	cfg.Level = "debug"

	log, logFile, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	defer logFile.Close()

	log.Debug("json entry")
	log.Sync()

	data, err := os.ReadFile(filepath.Join(cfg.Dir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"json entry"`) {
		t.Errorf("Expected JSON entry, got %s", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	// Write just over 10MB
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	_, logFile, err := setupLogging(testLoggingConfig(dir))
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_BadDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	if _, _, err := setupLogging(testLoggingConfig(filepath.Join(blocker, "logs"))); err == nil {
		t.Error("Expected error when log dir cannot be created")
	}
}

func TestSetupLogging_BadLevel(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := testLoggingConfig(dir)
	cfg.Level = "verbose"

	if _, _, err := setupLogging(cfg); err == nil {
		t.Error("Expected error for unknown log level")
	}
	// Rejected before touching the filesystem
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("Expected no log dir, got %v", err)
	}
}
