package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/michael-freling/claude-code-rule2hook/internal/rule2hook"
)

// clientObserver forwards conversion progress to the MCP client as
// logging notifications. Delivery is best effort: a missing session or
// a failed send never affects the conversion.
type clientObserver struct {
	ctx context.Context
	srv *server.MCPServer
}

// newClientObserver builds an observer bound to the request context.
// Outside a live MCP session it degrades to a no-op.
func newClientObserver(ctx context.Context) rule2hook.Observer {
	srv := server.ServerFromContext(ctx)
	if srv == nil {
		return rule2hook.NopObserver()
	}
	return &clientObserver{
		ctx: ctx,
		srv: srv,
	}
}

func (o *clientObserver) Info(message string) {
	o.notify("info", message)
}

func (o *clientObserver) Warning(message string) {
	o.notify("warning", message)
}

func (o *clientObserver) Progress(current, total int, message string) {
	_ = o.srv.SendNotificationToClient(o.ctx, "notifications/progress", map[string]any{
		"progress": current,
		"total":    total,
		"message":  message,
	})
}

func (o *clientObserver) notify(level, message string) {
	_ = o.srv.SendNotificationToClient(o.ctx, "notifications/message", map[string]any{
		"level": level,
		"data":  message,
	})
}
