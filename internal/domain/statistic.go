package domain

import (
	"context"

	"github.com/microblog-lab/backend/internal/model"
	"github.com/microblog-lab/backend/internal/repository"
	"github.com/microblog-lab/backend/pkg/errorx"
	"github.com/microblog-lab/backend/pkg/xcontext"
)

type StatisticDomain interface {
	GetOverview(context.Context, *model.GetOverviewRequest) (*model.GetOverviewResponse, error)
}

type statisticDomain struct {
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	followerRepo repository.FollowerRepository
}

func NewStatisticDomain(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followerRepo repository.FollowerRepository,
) *statisticDomain {
	return &statisticDomain{
		userRepo:     userRepo,
		postRepo:     postRepo,
		followerRepo: followerRepo,
	}
}

func (d *statisticDomain) GetOverview(
	ctx context.Context, req *model.GetOverviewRequest,
) (*model.GetOverviewResponse, error) {
	totalUsers, err := d.userRepo.Count(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count users: %v", err)
		return nil, errorx.Unknown
	}

	totalPosts, err := d.postRepo.Count(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count posts: %v", err)
		return nil, errorx.Unknown
	}

	totalFollows, err := d.followerRepo.Count(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count follow edges: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetOverviewResponse{
		TotalUsers:   totalUsers,
		TotalPosts:   totalPosts,
		TotalFollows: totalFollows,
	}, nil
}
