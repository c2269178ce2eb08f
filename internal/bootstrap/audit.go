package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger menerima event operasional penting (startup, shutdown, dsb).
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
