package logging

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

// 全局 logger, 未设置时日志被丢弃
var (
	current atomic.Pointer[holder]
	discard = NewFromZap(zap.NewNop())
)

type holder struct {
	logger Logger
}

// SetGlobalLogger 设置全局 logger, 可重复覆盖, nil 被忽略
func SetGlobalLogger(l Logger) {
	if l != nil {
		current.Store(&holder{logger: l})
	}
}

// ResetGlobalLogger 恢复为丢弃所有日志
func ResetGlobalLogger() {
	current.Store(nil)
}

// L 返回当前全局 logger
func L() Logger {
	if h := current.Load(); h != nil {
		return h.logger
	}
	return discard
}

// UnderlyingZap 返回全局 logger 底层的 *zap.Logger, 未设置或非 zap 实现时为 nil
func UnderlyingZap() *zap.Logger {
	h := current.Load()
	if h == nil {
		return nil
	}
	if zl, ok := h.logger.(*ZapLogger); ok {
		return zl.Zap()
	}
	return nil
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...zap.Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...zap.Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...zap.Field) { L().Error(ctx, msg, fields...) }

func Debugf(ctx context.Context, format string, args ...any) { L().Debug(ctx, fmt.Sprintf(format, args...)) }
func Infof(ctx context.Context, format string, args ...any)  { L().Info(ctx, fmt.Sprintf(format, args...)) }
func Warnf(ctx context.Context, format string, args ...any)  { L().Warn(ctx, fmt.Sprintf(format, args...)) }
func Errorf(ctx context.Context, format string, args ...any) { L().Error(ctx, fmt.Sprintf(format, args...)) }
