package middleware

import (
	"context"

	"github.com/microblog-lab/backend/internal/domain"
	"github.com/microblog-lab/backend/internal/repository"
	"github.com/microblog-lab/backend/pkg/router"
	"github.com/microblog-lab/backend/pkg/xcontext"
)

// TouchLastSeen updates the last-seen timestamp of the authenticated
// user on every request passing through it. A failed touch never fails
// the request.
func TouchLastSeen(userRepo repository.UserRepository, clock domain.Clock) router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if userID := xcontext.RequestUserID(ctx); userID != 0 {
			if err := userRepo.UpdateLastSeen(ctx, userID, clock.Now()); err != nil {
				xcontext.Logger(ctx).Warnf("Cannot touch last seen: %v", err)
			}
		}

		return ctx, nil
	}
}
