package temporal

import (
	"fmt"

	"go.temporal.io/sdk/log"
	"go.uber.org/zap"

	"github.com/feral-file/ff-referral/internal/logger"
)

// ZapLoggerAdapter adapts zap.Logger to Temporal's log.Logger interface
type ZapLoggerAdapter struct {
	logger *zap.Logger
}

var (
	_ log.Logger     = (*ZapLoggerAdapter)(nil)
	_ log.WithLogger = (*ZapLoggerAdapter)(nil)
)

// NewZapLoggerAdapter creates a new zap logger adapter for Temporal.
// A nil logger falls back to the process logger.
func NewZapLoggerAdapter(l *zap.Logger) log.Logger {
	if l == nil {
		l = logger.Default()
	}
	return &ZapLoggerAdapter{logger: l.WithOptions(zap.AddCallerSkip(1))}
}

func (z *ZapLoggerAdapter) Debug(msg string, keyvals ...interface{}) {
	z.logger.Debug(msg, keyvalsToFields(keyvals)...)
}

func (z *ZapLoggerAdapter) Info(msg string, keyvals ...interface{}) {
	z.logger.Info(msg, keyvalsToFields(keyvals)...)
}

func (z *ZapLoggerAdapter) Warn(msg string, keyvals ...interface{}) {
	z.logger.Warn(msg, keyvalsToFields(keyvals)...)
}

func (z *ZapLoggerAdapter) Error(msg string, keyvals ...interface{}) {
	z.logger.Error(msg, keyvalsToFields(keyvals)...)
}

// With returns a logger that always carries the given key-value pairs
func (z *ZapLoggerAdapter) With(keyvals ...interface{}) log.Logger {
	return &ZapLoggerAdapter{logger: z.logger.With(keyvalsToFields(keyvals)...)}
}

// keyvalsToFields converts Temporal's key1, val1, key2, val2 pairs to zap fields.
// A trailing key without a value is dropped; non-string keys are stringified.
func keyvalsToFields(keyvals []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		if err, ok := keyvals[i+1].(error); ok {
			fields = append(fields, zap.NamedError(key, err))
			continue
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}
	return fields
}
