package utils

import (
	"context"
	"runtime"

	"go.uber.org/zap"
)

type loggerCtxKey struct{}

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}

// WithSample returns a context whose logger carries the sample name,
// so every log line of one estimation run can be traced back to it.
func WithSample(ctx context.Context, sampleName string) context.Context {
	logger := zap.L().With(zap.String("sample", sampleName))
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

func GetLogger(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerCtxKey{}).(*zap.Logger); ok {
		return logger
	}
	return zap.L()
}

func GetPanicInfo() string {
	buf := make([]byte, 16384)
	l := runtime.Stack(buf, false)
	return string(buf[:l])
}
