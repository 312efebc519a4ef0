// Package source supplies router record snapshots to the display layer.
package source

import (
	"context"

	"github.com/user/wispmon/internal/model"
)

// Source fetches one fresh fleet snapshot. Implementations are
// single-shot: the caller decides when to refresh, and an error leaves
// the caller's previous snapshot untouched.
type Source interface {
	Fetch(ctx context.Context) ([]model.RouterRecord, error)
}

// ActionSender dispatches a router action command (restart/disconnect).
type ActionSender interface {
	SendAction(ctx context.Context, routerID, action string) error
}
