package stats

import "context"

type Repository interface {
	TableCounts(ctx context.Context) (*TableCounts, error)
}
