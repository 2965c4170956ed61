package domain

import (
	"context"
	"time"

	"github.com/microblog-lab/backend/pkg/errorx"
	"github.com/microblog-lab/backend/pkg/xcontext"
)

// Clock supplies the current UTC time. It is injected so tests can pin
// timestamps.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// normalizePagination validates a one-indexed page number and a page size
// against the configured limits and returns the query window.
func normalizePagination(ctx context.Context, page, limit int) (offset, pageSize int, err error) {
	if page == 0 {
		page = 1
	}

	if page < 1 {
		return 0, 0, errorx.New(errorx.BadRequest, "Not allow non-positive page")
	}

	apiCfg := xcontext.Configs(ctx).ApiServer
	if limit == 0 {
		limit = apiCfg.DefaultLimit
	}

	if limit < 0 {
		return 0, 0, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if limit > apiCfg.MaxLimit {
		return 0, 0, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	return (page - 1) * limit, limit, nil
}
