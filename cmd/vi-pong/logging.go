package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/vi-pong/config"
)

const (
	logFileName = "vi-pong.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging builds the file logger. The terminal is in raw mode, so nothing goes to stdout/stderr.
// Disabled logging returns a no-op logger and a nil file.
func setupLogging(cfg config.LoggingConfig) (*zap.Logger, *os.File, error) {
	if !cfg.Enabled {
		return zap.NewNop(), nil, nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(cfg.Dir, logFileName)
	if err := rotateLog(logPath); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	var encoder zapcore.Encoder
	if strings.EqualFold(cfg.Format, "json") {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		encCfg.ConsoleSeparator = "  "
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(f), level)
	return zap.New(core), f, nil
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	ext := filepath.Ext(logPath)
	rotated := strings.TrimSuffix(logPath, ext) + "_" + time.Now().Format("20060102_150405") + ext
	if err := os.Rename(logPath, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
