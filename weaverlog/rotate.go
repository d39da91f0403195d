package weaverlog

import (
	"github.com/DeRuina/timberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RotatingFileOptions configures WithRotatingFile's timberjack-backed
// writer.
type RotatingFileOptions struct {
	// MaxSizeMB is the size a log file reaches before it is rotated.
	MaxSizeMB int
	// MaxBackups is how many rotated files are kept.
	MaxBackups int
	// MaxAgeDays is how long a rotated file is kept, regardless of
	// MaxBackups.
	MaxAgeDays int
}

// WithRotatingFile builds a zap.Logger that writes JSON-encoded entries
// to path, rotating per opts via timberjack, in addition to Default's
// own output. Hosts that want file-based logs (rather than just stderr)
// use this instead of Default/ForServer.
func WithRotatingFile(path string, opts RotatingFileOptions) *zap.Logger {
	rotator := &timberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(rotator),
		zapcore.InfoLevel,
	)

	return zap.New(zapcore.NewTee(fileCore, Default().Core()))
}
