package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/microblog-lab/backend/internal/entity"
	"github.com/microblog-lab/backend/internal/model"
	"github.com/microblog-lab/backend/internal/repository"
	"github.com/microblog-lab/backend/pkg/crypto"
	"github.com/microblog-lab/backend/pkg/errorx"
	"github.com/microblog-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	GetUser(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	Update(context.Context, *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
	ChangePassword(context.Context, *model.ChangePasswordRequest) (*model.ChangePasswordResponse, error)
	Delete(context.Context, *model.DeleteUserRequest) (*model.DeleteUserResponse, error)
}

type userDomain struct {
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	followerRepo repository.FollowerRepository
}

func NewUserDomain(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followerRepo repository.FollowerRepository,
) *userDomain {
	return &userDomain{
		userRepo:     userRepo,
		postRepo:     postRepo,
		followerRepo: followerRepo,
	}
}

func (d *userDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get current user: %v", err)
		return nil, errorx.Unknown
	}

	clientUser, err := d.decorate(ctx, user, true)
	if err != nil {
		return nil, err
	}

	resp := model.GetMeResponse(clientUser)
	return &resp, nil
}

func (d *userDomain) GetUser(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
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

	clientUser, err := d.decorate(ctx, user, false)
	if err != nil {
		return nil, err
	}

	resp := model.GetUserResponse(clientUser)
	return &resp, nil
}

func (d *userDomain) Update(
	ctx context.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	if req.Username != "" {
		existing, err := d.userRepo.GetByUsername(ctx, req.Username)
		if err == nil && existing.ID != userID {
			return nil, errorx.New(errorx.AlreadyExists, "This username was already taken")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot check username: %v", err)
			return nil, errorx.Unknown
		}
	}

	err := d.userRepo.UpdateByID(ctx, userID, &entity.User{
		Username: strings.TrimSpace(req.Username),
		AboutMe:  req.AboutMe,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateUserResponse{}, nil
}

func (d *userDomain) ChangePassword(
	ctx context.Context, req *model.ChangePasswordRequest,
) (*model.ChangePasswordResponse, error) {
	if req.NewPassword == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty password")
	}

	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get current user: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.CheckPassword(user.PasswordHash, req.OldPassword) {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid password")
	}

	passwordHash, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update password: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ChangePasswordResponse{}, nil
}

// Delete removes the account with its posts and follow edges in one
// transaction.
func (d *userDomain) Delete(
	ctx context.Context, req *model.DeleteUserRequest,
) (*model.DeleteUserResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.userRepo.DeleteByID(ctx, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete user: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	return &model.DeleteUserResponse{}, nil
}

func (d *userDomain) decorate(
	ctx context.Context, user *entity.User, includeSensitive bool,
) (model.User, error) {
	clientUser := model.ConvertUser(user, includeSensitive)

	var err error
	clientUser.FollowerCount, err = d.followerRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count followers: %v", err)
		return model.User{}, errorx.Unknown
	}

	clientUser.FollowingCount, err = d.followerRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count following: %v", err)
		return model.User{}, errorx.Unknown
	}

	clientUser.PostCount, err = d.postRepo.CountByAuthorID(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count posts: %v", err)
		return model.User{}, errorx.Unknown
	}

	if viewerID := xcontext.RequestUserID(ctx); viewerID != 0 && viewerID != user.ID {
		if _, err := d.followerRepo.Get(ctx, viewerID, user.ID); err == nil {
			clientUser.IsFollowing = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot check follow edge: %v", err)
			return model.User{}, errorx.Unknown
		}
	}

	return clientUser, nil
}
