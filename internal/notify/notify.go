// Package notify is the user-facing notification boundary. Every mutating
// operation emits exactly one outcome through it, fire-and-forget.
package notify

import "go.uber.org/zap"

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// ZapNotifier surfaces notifications through the application logger. The
// original UI rendered these as toasts; a headless run gets log lines.
type ZapNotifier struct {
	logger *zap.Logger
}

func NewZapNotifier(log *zap.Logger) *ZapNotifier {
	return &ZapNotifier{logger: log}
}

func (n *ZapNotifier) Success(msg string) {
	n.logger.Info(msg, zap.String("notification", "success"))
}

func (n *ZapNotifier) Error(msg string) {
	n.logger.Warn(msg, zap.String("notification", "error"))
}
