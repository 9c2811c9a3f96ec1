package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a zap-backed Logger from the given config.
// Invalid values fall back to a development console logger.
func Init(cfg ZapConfig) Logger {
	var zapCfg zap.Config
	if cfg.Mode == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.DebugLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.ColorEnabled && zapCfg.Encoding == "console" {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

func (l *zapLogger) Debug(_ context.Context, args ...interface{}) { l.sugar.Debug(args...) }
func (l *zapLogger) Debugf(_ context.Context, format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}
func (l *zapLogger) Info(_ context.Context, args ...interface{}) { l.sugar.Info(args...) }
func (l *zapLogger) Infof(_ context.Context, format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}
func (l *zapLogger) Warn(_ context.Context, args ...interface{}) { l.sugar.Warn(args...) }
func (l *zapLogger) Warnf(_ context.Context, format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}
func (l *zapLogger) Error(_ context.Context, args ...interface{}) { l.sugar.Error(args...) }
func (l *zapLogger) Errorf(_ context.Context, format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}
func (l *zapLogger) Fatal(_ context.Context, args ...interface{}) { l.sugar.Fatal(args...) }
func (l *zapLogger) Fatalf(_ context.Context, format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}
