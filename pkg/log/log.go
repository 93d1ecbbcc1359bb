package log

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeFormat = "2006-01-02 15:04:05.000"

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format(timeFormat))
}

var logLevelMap = map[string]zapcore.Level{
	LevelDebug: zapcore.DebugLevel,
	LevelInfo:  zapcore.InfoLevel,
	LevelWarn:  zapcore.WarnLevel,
	LevelError: zapcore.ErrorLevel,
	LevelFatal: zapcore.FatalLevel,
}

func (l *zapLogger) loggerLevel() zapcore.Level {
	level, exist := logLevelMap[l.cfg.Level]
	if !exist {
		return zapcore.DebugLevel
	}
	return level
}

func (l *zapLogger) init() {
	logWriter := zapcore.AddSync(os.Stderr)

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	if l.cfg.Mode == ModeProduction {
		encoderCfg = zap.NewProductionEncoderConfig()
	}
	encoderCfg.LevelKey = "LEVEL"
	encoderCfg.CallerKey = "CALLER"
	encoderCfg.TimeKey = "TIME"
	encoderCfg.NameKey = "NAME"
	encoderCfg.MessageKey = "MESSAGE"
	encoderCfg.EncodeTime = timeEncoder
	if l.cfg.ColorEnabled && l.cfg.Encoding == EncodingConsole {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var encoder zapcore.Encoder
	if l.cfg.Encoding == EncodingConsole {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, logWriter, zap.NewAtomicLevelAt(l.loggerLevel()))
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	l.sugarLogger = logger.Sugar()
}

func (l *zapLogger) Debug(_ context.Context, args ...any) { l.sugarLogger.Debug(args...) }
func (l *zapLogger) Debugf(_ context.Context, template string, args ...any) {
	l.sugarLogger.Debugf(template, args...)
}
func (l *zapLogger) Info(_ context.Context, args ...any) { l.sugarLogger.Info(args...) }
func (l *zapLogger) Infof(_ context.Context, template string, args ...any) {
	l.sugarLogger.Infof(template, args...)
}
func (l *zapLogger) Warn(_ context.Context, args ...any) { l.sugarLogger.Warn(args...) }
func (l *zapLogger) Warnf(_ context.Context, template string, args ...any) {
	l.sugarLogger.Warnf(template, args...)
}
func (l *zapLogger) Error(_ context.Context, args ...any) { l.sugarLogger.Error(args...) }
func (l *zapLogger) Errorf(_ context.Context, template string, args ...any) {
	l.sugarLogger.Errorf(template, args...)
}
func (l *zapLogger) Fatal(_ context.Context, args ...any) { l.sugarLogger.Fatal(args...) }
func (l *zapLogger) Fatalf(_ context.Context, template string, args ...any) {
	l.sugarLogger.Fatalf(template, args...)
}
