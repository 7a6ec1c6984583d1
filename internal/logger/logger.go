package rewards

import (
	"go.uber.org/zap"
)

// Логгер с уровнем из конфигурации ("debug", "info", ...)
func NewZapLog(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zapcfg := zap.NewProductionConfig()
	zapcfg.Level = lvl
	return zapcfg.Build()
}
