package domain

import (
	"testing"

	"github.com/microblog-lab/backend/internal/entity"
	"github.com/microblog-lab/backend/internal/model"
	"github.com/microblog-lab/backend/internal/repository"
	"github.com/microblog-lab/backend/pkg/crypto"
	"github.com/microblog-lab/backend/pkg/errorx"
	"github.com/microblog-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserDomainForTest() (*userDomain, repository.UserRepository) {
	userRepo := repository.NewUserRepository()
	return NewUserDomain(
		userRepo,
		repository.NewPostRepository(),
		repository.NewFollowerRepository(),
	), userRepo
}

func Test_userDomain_GetUser(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain, _ := newUserDomainForTest()

	// jason views jun, whom he follows.
	jasonCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := domain.GetUser(jasonCtx, &model.GetUserRequest{Username: "jun"})
	require.NoError(t, err)
	require.Equal(t, "jun", resp.Username)
	require.Empty(t, resp.Email)
	require.Equal(t, int64(1), resp.FollowerCount)
	require.Equal(t, int64(1), resp.FollowingCount)
	require.Equal(t, int64(1), resp.PostCount)
	require.True(t, resp.IsFollowing)

	// jun does not follow jason back.
	junCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	resp, err = domain.GetUser(junCtx, &model.GetUserRequest{Username: "jason"})
	require.NoError(t, err)
	require.False(t, resp.IsFollowing)

	var errx errorx.Error
	_, err = domain.GetUser(jasonCtx, &model.GetUserRequest{Username: "nobody"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_userDomain_GetMe(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain, _ := newUserDomainForTest()

	jasonCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := domain.GetMe(jasonCtx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, "jason", resp.Username)
	require.Equal(t, "jason@example.com", resp.Email)
	require.Equal(t,
		"https://www.gravatar.com/avatar/eba69e62f8bc92297b7a97659b5d6130?d=identicon&s=128",
		resp.AvatarURL)
	require.Equal(t, int64(2), resp.FollowingCount)
	require.Equal(t, int64(0), resp.FollowerCount)
	require.False(t, resp.IsFollowing)
}

func Test_userDomain_Update(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain, userRepo := newUserDomainForTest()
	jasonCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	// Updating only the about text keeps the username.
	_, err := domain.Update(jasonCtx, &model.UpdateUserRequest{AboutMe: "gopher"})
	require.NoError(t, err)

	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, "jason", user.Username)
	require.Equal(t, "gopher", user.AboutMe)

	var errx errorx.Error
	_, err = domain.Update(jasonCtx, &model.UpdateUserRequest{Username: "jun"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)

	// Keeping one's own username is not a conflict.
	_, err = domain.Update(jasonCtx, &model.UpdateUserRequest{Username: "jason", AboutMe: "still me"})
	require.NoError(t, err)

	_, err = domain.Update(jasonCtx, &model.UpdateUserRequest{Username: "jay"})
	require.NoError(t, err)

	user, err = userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, "jay", user.Username)
}

func Test_userDomain_ChangePassword(t *testing.T) {
	ctx := testutil.MockContext()

	domain, userRepo := newUserDomainForTest()

	passwordHash, err := crypto.HashPassword("cat")
	require.NoError(t, err)

	user, err := testutil.SampleUser(ctx, &entity.User{PasswordHash: passwordHash})
	require.NoError(t, err)

	susanCtx := testutil.MockContextWithUserID(ctx, user.ID)

	var errx errorx.Error
	_, err = domain.ChangePassword(susanCtx, &model.ChangePasswordRequest{
		OldPassword: "dog",
		NewPassword: "bird",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)

	_, err = domain.ChangePassword(susanCtx, &model.ChangePasswordRequest{
		OldPassword: "cat",
		NewPassword: "bird",
	})
	require.NoError(t, err)

	updated, err := userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, crypto.CheckPassword(updated.PasswordHash, "bird"))
	require.False(t, crypto.CheckPassword(updated.PasswordHash, "cat"))
}

func Test_userDomain_Delete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain, userRepo := newUserDomainForTest()
	postRepo := repository.NewPostRepository()
	followerRepo := repository.NewFollowerRepository()

	jasonCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	_, err := domain.Delete(jasonCtx, &model.DeleteUserRequest{})
	require.NoError(t, err)

	_, err = userRepo.GetByID(ctx, testutil.User1.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// His post and every edge he appeared in are gone with him.
	postCount, err := postRepo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), postCount)

	edgeCount, err := followerRepo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), edgeCount)

	_, err = followerRepo.Get(ctx, testutil.User1.ID, testutil.User2.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
