package contracts

import (
	"context"

	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
)

// Committer applies a plan of catalog mutations in one commit.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}

// CacheClearer drops cached catalog reads after the catalog changes.
type CacheClearer interface {
	Clear(ctx context.Context) error
}
