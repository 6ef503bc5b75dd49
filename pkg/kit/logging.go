package kit

import "go.uber.org/zap"

// NewLogger builds the production logger. Every line carries the service
// name and the per-process instance id so logs from restarted processes can
// be told apart.
func NewLogger(service, instance string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]any{
		"service":  service,
		"instance": instance,
	}
	l, _ := cfg.Build()
	return l
}
