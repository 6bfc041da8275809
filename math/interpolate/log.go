package interpolate

import (
	"fmt"

	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger sets the logger used to report rejected configurations and
// strategy changes. Queries are never logged. The default discards
// everything. A nil logger restores the default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l.Named("interpolate")
}

func logRejected(what string, ndim int, err error) {
	logger.Debug("rejected interpolator configuration",
		zap.String("step", what), zap.Int("ndim", ndim), zap.Error(err))
}

func logChanged(what string, v fmt.Stringer) {
	logger.Debug("interpolator reconfigured", zap.Stringer(what, v))
}
