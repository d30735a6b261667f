package logging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/consts"
)

// Logger 日志记录器接口
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...zap.Field)
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Warn(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
	Fatal(ctx context.Context, msg string, fields ...zap.Field)
	With(fields ...zap.Field) Logger
	Sync() error
}

type traceIDKey struct{}

// WithTraceID 在 context 中写入 trace_id, 之后的日志都会带上
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceID 从 context 中读取 trace_id
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// ZapLogger 基于 zap 的日志记录器
type ZapLogger struct {
	zapLogger *zap.Logger
}

// NewFromZap 包装已有的 *zap.Logger
func NewFromZap(l *zap.Logger) *ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapLogger{zapLogger: l}
}

func newZapLogger(cfg *LoggingConfig) (*ZapLogger, error) {
	writeSyncer, err := buildWriteSyncer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create write syncer: %w", err)
	}
	core := zapcore.NewCore(buildEncoder(cfg.Format), writeSyncer, parseLevel(cfg.Level))
	// skip logWithContext and the Logger method
	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2), zap.AddStacktrace(zapcore.ErrorLevel))
	return &ZapLogger{zapLogger: l}, nil
}

// buildEncoder 构建编码器
func buildEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if strings.EqualFold(format, "console") {
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}

// buildWriteSyncer 构建写入器
func buildWriteSyncer(cfg *LoggingConfig) (zapcore.WriteSyncer, error) {
	switch strings.ToLower(cfg.Output) {
	case "stdout", "":
		return zapcore.AddSync(os.Stdout), nil
	case "stderr":
		return zapcore.AddSync(os.Stderr), nil
	case "file":
		return buildFileWriteSyncer(cfg)
	default:
		// 如果不是标准关键字，当作文件路径处理
		return openFile(cfg.Output)
	}
}

// buildFileWriteSyncer 构建文件写入器（使用配置的文件设置）
func buildFileWriteSyncer(cfg *LoggingConfig) (zapcore.WriteSyncer, error) {
	if cfg.FileConfig == nil {
		return nil, fmt.Errorf("file config is required when output is 'file'")
	}
	if err := os.MkdirAll(cfg.FileConfig.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile := filepath.Join(cfg.FileConfig.Dir, cfg.FileConfig.Filename+".log")

	if rc := cfg.RotateConfig; rc != nil && rc.Enabled {
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    rc.MaxSize,
			MaxAge:     int(rc.MaxAge.Hours() / 24), // 转换为天数
			MaxBackups: rc.MaxBackups,
			Compress:   rc.Compress,
			LocalTime:  true,
		}), nil
	}
	return openFile(logFile)
}

func openFile(path string) (zapcore.WriteSyncer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return zapcore.AddSync(file), nil
}

// parseLevel 解析日志级别
func parseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "FATAL":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *ZapLogger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithContext(ctx, zapcore.DebugLevel, msg, fields...)
}

func (l *ZapLogger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithContext(ctx, zapcore.InfoLevel, msg, fields...)
}

func (l *ZapLogger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithContext(ctx, zapcore.WarnLevel, msg, fields...)
}

func (l *ZapLogger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithContext(ctx, zapcore.ErrorLevel, msg, fields...)
}

// Fatal 记录致命错误日志后退出进程
func (l *ZapLogger) Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithContext(ctx, zapcore.FatalLevel, msg, fields...)
}

// With 创建带有附加字段的新logger
func (l *ZapLogger) With(fields ...zap.Field) Logger {
	return &ZapLogger{zapLogger: l.zapLogger.With(fields...)}
}

func (l *ZapLogger) Sync() error {
	return l.zapLogger.Sync()
}

// Zap 返回底层 *zap.Logger
func (l *ZapLogger) Zap() *zap.Logger {
	return l.zapLogger
}

// logWithContext 带上下文的日志记录
func (l *ZapLogger) logWithContext(ctx context.Context, level zapcore.Level, msg string, fields ...zap.Field) {
	if ce := l.zapLogger.Check(level, msg); ce != nil {
		if traceID := TraceID(ctx); traceID != "" {
			fields = append([]zap.Field{zap.String(consts.KEY_TraceID, traceID)}, fields...)
		}
		ce.Write(fields...)
	}
}
