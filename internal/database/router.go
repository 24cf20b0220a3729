package database

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtlprog/dormreport/internal/domain"
)

// Router picks the store copy that serves a read.
//
// The primary is authoritative. The secondary is filled by an external copy job
// and may lag arbitrarily; it is never used inside a transition.
type Router struct {
	primary   *pgxpool.Pool
	secondary *pgxpool.Pool
}

// NewRouter creates a Router. secondary may be nil.
func NewRouter(primary, secondary *pgxpool.Pool) *Router {
	if secondary == nil {
		slog.Info("no secondary store configured, relaxed reads use primary")
	}
	return &Router{primary: primary, secondary: secondary}
}

// Primary returns the authoritative pool. All writes go here.
func (r *Router) Primary() *pgxpool.Pool {
	return r.primary
}

// HasSecondary reports whether a secondary copy is configured.
func (r *Router) HasSecondary() bool {
	return r.secondary != nil
}

// ForMode returns the pool for a read in the given mode. eventual and weak go to
// the secondary when one exists and silently fall back to the primary otherwise.
func (r *Router) ForMode(mode domain.ReadMode) *pgxpool.Pool {
	if mode.IsRelaxed() && r.secondary != nil {
		return r.secondary
	}
	return r.primary
}
