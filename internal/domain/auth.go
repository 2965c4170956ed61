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

type AuthDomain interface {
	Register(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
	RequestPasswordReset(context.Context, *model.RequestPasswordResetRequest) (*model.RequestPasswordResetResponse, error)
	ResetPassword(context.Context, *model.ResetPasswordRequest) (*model.ResetPasswordResponse, error)
}

type authDomain struct {
	userRepo repository.UserRepository
}

func NewAuthDomain(userRepo repository.UserRepository) *authDomain {
	return &authDomain{userRepo: userRepo}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty username or email")
	}

	if req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty password")
	}

	if _, err := d.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "This username was already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check username: %v", err)
		return nil, errorx.Unknown
	}

	if _, err := d.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "This email was already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check email: %v", err)
		return nil, errorx.Unknown
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can still win the race on the unique
		// constraint.
		xcontext.Logger(ctx).Warnf("Cannot create user: %v", err)
		return nil, errorx.New(errorx.AlreadyExists, "This username or email was already taken")
	}

	accessToken, err := d.generateAccessToken(ctx, user)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RegisterResponse{
		User:        model.ConvertUser(user, true),
		AccessToken: accessToken,
	}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	user, err := d.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
			return nil, errorx.Unknown
		}

		// An unknown username and a wrong password are the same failure to
		// the caller.
		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	if !crypto.CheckPassword(user.PasswordHash, req.Password) {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	accessToken, err := d.generateAccessToken(ctx, user)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{
		User:        model.ConvertUser(user, true),
		AccessToken: accessToken,
	}, nil
}

func (d *authDomain) RequestPasswordReset(
	ctx context.Context, req *model.RequestPasswordResetRequest,
) (*model.RequestPasswordResetResponse, error) {
	user, err := d.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
			return nil, errorx.Unknown
		}

		return nil, errorx.New(errorx.NotFound, "Not found user with this email")
	}

	resetToken, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.ResetToken.Expiration,
		model.ResetToken{UserID: user.ID},
	)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate reset token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RequestPasswordResetResponse{ResetToken: resetToken}, nil
}

func (d *authDomain) ResetPassword(
	ctx context.Context, req *model.ResetPasswordRequest,
) (*model.ResetPasswordResponse, error) {
	if req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty password")
	}

	// Expired, malformed, and forged tokens all collapse into one failure
	// signal.
	var resetToken model.ResetToken
	if err := xcontext.TokenEngine(ctx).Verify(req.Token, &resetToken); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot verify reset token: %v", err)
		return nil, errorx.New(errorx.Unauthenticated, "Invalid or expired reset token")
	}

	user, err := d.userRepo.GetByID(ctx, resetToken.UserID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get user of reset token: %v", err)
		return nil, errorx.New(errorx.Unauthenticated, "Invalid or expired reset token")
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update password: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ResetPasswordResponse{}, nil
}

func (d *authDomain) generateAccessToken(ctx context.Context, user *entity.User) (string, error) {
	return xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration,
		model.AccessToken{
			ID:       user.ID,
			Username: user.Username,
		},
	)
}
