package domain

import (
	"context"
	"errors"

	"github.com/microblog-lab/backend/internal/entity"
	"github.com/microblog-lab/backend/internal/model"
	"github.com/microblog-lab/backend/internal/repository"
	"github.com/microblog-lab/backend/pkg/errorx"
	"github.com/microblog-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type FollowDomain interface {
	Follow(context.Context, *model.FollowRequest) (*model.FollowResponse, error)
	Unfollow(context.Context, *model.UnfollowRequest) (*model.UnfollowResponse, error)
	GetFollowers(context.Context, *model.GetFollowersRequest) (*model.GetFollowersResponse, error)
	GetFollowing(context.Context, *model.GetFollowingRequest) (*model.GetFollowingResponse, error)
}

type followDomain struct {
	userRepo     repository.UserRepository
	followerRepo repository.FollowerRepository
}

func NewFollowDomain(
	userRepo repository.UserRepository,
	followerRepo repository.FollowerRepository,
) *followDomain {
	return &followDomain{userRepo: userRepo, followerRepo: followerRepo}
}

// Follow inserts the edge follower->target. It is idempotent: following a
// user who is already followed is a no-op success.
func (d *followDomain) Follow(
	ctx context.Context, req *model.FollowRequest,
) (*model.FollowResponse, error) {
	target, err := d.getTarget(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	followerID := xcontext.RequestUserID(ctx)
	if followerID == target.ID {
		return nil, errorx.New(errorx.BadRequest, "You cannot follow yourself")
	}

	err = d.followerRepo.Create(ctx, &entity.Follower{
		FollowerID: followerID,
		FollowedID: target.ID,
	})
	if err != nil {
		// The composite key already holds the edge; a duplicate insert,
		// including one lost to a concurrent identical request, converges
		// to the same state.
		if _, getErr := d.followerRepo.Get(ctx, followerID, target.ID); getErr == nil {
			return &model.FollowResponse{}, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot create follower edge: %v", err)
		return nil, errorx.Unknown
	}

	return &model.FollowResponse{}, nil
}

// Unfollow removes the edge if present. Removing an absent edge is a
// no-op success.
func (d *followDomain) Unfollow(
	ctx context.Context, req *model.UnfollowRequest,
) (*model.UnfollowResponse, error) {
	target, err := d.getTarget(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	err = d.followerRepo.Delete(ctx, xcontext.RequestUserID(ctx), target.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete follower edge: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UnfollowResponse{}, nil
}

func (d *followDomain) GetFollowers(
	ctx context.Context, req *model.GetFollowersRequest,
) (*model.GetFollowersResponse, error) {
	target, err := d.getTarget(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	offset, limit, err := normalizePagination(ctx, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	users, err := d.followerRepo.GetFollowerList(ctx, target.ID, offset, limit+1)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get followers: %v", err)
		return nil, errorx.Unknown
	}

	hasNext := len(users) > limit
	if hasNext {
		users = users[:limit]
	}

	return &model.GetFollowersResponse{
		Users:   model.ConvertUsers(users),
		HasNext: hasNext,
		HasPrev: offset > 0,
	}, nil
}

func (d *followDomain) GetFollowing(
	ctx context.Context, req *model.GetFollowingRequest,
) (*model.GetFollowingResponse, error) {
	target, err := d.getTarget(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	offset, limit, err := normalizePagination(ctx, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	users, err := d.followerRepo.GetFollowingList(ctx, target.ID, offset, limit+1)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get following list: %v", err)
		return nil, errorx.Unknown
	}

	hasNext := len(users) > limit
	if hasNext {
		users = users[:limit]
	}

	return &model.GetFollowingResponse{
		Users:   model.ConvertUsers(users),
		HasNext: hasNext,
		HasPrev: offset > 0,
	}, nil
}

func (d *followDomain) getTarget(ctx context.Context, username string) (*entity.User, error) {
	if username == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty username")
	}

	user, err := d.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user %s", username)
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return user, nil
}
