package domain

import (
	"context"
	"errors"

	"github.com/microblog-lab/backend/internal/model"
	"github.com/microblog-lab/backend/internal/repository"
	"github.com/microblog-lab/backend/pkg/errorx"
	"github.com/microblog-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type TimelineDomain interface {
	Followed(context.Context, *model.FollowedTimelineRequest) (*model.FollowedTimelineResponse, error)
	Global(context.Context, *model.GlobalTimelineRequest) (*model.GlobalTimelineResponse, error)
	UserPosts(context.Context, *model.UserPostsRequest) (*model.UserPostsResponse, error)
}

type timelineDomain struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewTimelineDomain(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *timelineDomain {
	return &timelineDomain{postRepo: postRepo, userRepo: userRepo}
}

// Followed returns one page of the viewer's feed: their own posts plus
// posts of everyone they follow, newest first. A viewer who follows no
// one and has written nothing gets an empty first page, not an error.
func (d *timelineDomain) Followed(
	ctx context.Context, req *model.FollowedTimelineRequest,
) (*model.FollowedTimelineResponse, error) {
	offset, limit, err := normalizePagination(ctx, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	// One extra row decides has_next without counting the whole feed.
	posts, err := d.postRepo.GetFollowedList(ctx, xcontext.RequestUserID(ctx), offset, limit+1)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get followed posts: %v", err)
		return nil, errorx.Unknown
	}

	hasNext := len(posts) > limit
	if hasNext {
		posts = posts[:limit]
	}

	return &model.FollowedTimelineResponse{
		Posts:   model.ConvertPosts(posts),
		HasNext: hasNext,
		HasPrev: offset > 0,
	}, nil
}

// Global returns one page over every post in the system, ignoring the
// follow graph.
func (d *timelineDomain) Global(
	ctx context.Context, req *model.GlobalTimelineRequest,
) (*model.GlobalTimelineResponse, error) {
	offset, limit, err := normalizePagination(ctx, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	posts, err := d.postRepo.GetGlobalList(ctx, offset, limit+1)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get global posts: %v", err)
		return nil, errorx.Unknown
	}

	hasNext := len(posts) > limit
	if hasNext {
		posts = posts[:limit]
	}

	return &model.GlobalTimelineResponse{
		Posts:   model.ConvertPosts(posts),
		HasNext: hasNext,
		HasPrev: offset > 0,
	}, nil
}

func (d *timelineDomain) UserPosts(
	ctx context.Context, req *model.UserPostsRequest,
) (*model.UserPostsResponse, error) {
	if req.Username == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty username")
	}

	user, err := d.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user %s", req.Username)
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	offset, limit, err := normalizePagination(ctx, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	posts, err := d.postRepo.GetListByAuthorID(ctx, user.ID, offset, limit+1)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user posts: %v", err)
		return nil, errorx.Unknown
	}

	hasNext := len(posts) > limit
	if hasNext {
		posts = posts[:limit]
	}

	return &model.UserPostsResponse{
		Posts:   model.ConvertPosts(posts),
		HasNext: hasNext,
		HasPrev: offset > 0,
	}, nil
}
