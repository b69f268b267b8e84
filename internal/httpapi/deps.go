package httpapi

import (
	"context"
	"sync/atomic"

	"jobfinder-engine/internal/config"
	"jobfinder-engine/internal/domain"
	"jobfinder-engine/internal/events"
	"jobfinder-engine/internal/scrape/types"
	"jobfinder-engine/internal/shortlist"
)

type Deps struct {
	Shortlist *shortlist.Store
	Hub       *events.Hub

	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Search entrypoint (inject for testability)
	Search func(ctx context.Context, targets []domain.Target) []types.Result

	Version string
}
