package domain

import (
	"testing"

	"github.com/microblog-lab/backend/internal/model"
	"github.com/microblog-lab/backend/internal/repository"
	"github.com/microblog-lab/backend/pkg/errorx"
	"github.com/microblog-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_timelineDomain_Followed(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewTimelineDomain(repository.NewPostRepository(), repository.NewUserRepository())

	testcases := []struct {
		viewerID int64
		expected []string
	}{
		{testutil.User1.ID, []string{"post from john", "post from jun", "post from jason"}},
		{testutil.User2.ID, []string{"post from jack", "post from jun"}},
		{testutil.User3.ID, []string{"post from john", "post from jack"}},
		{testutil.User4.ID, []string{"post from john"}},
	}

	for _, tc := range testcases {
		viewerCtx := testutil.MockContextWithUserID(ctx, tc.viewerID)
		resp, err := domain.Followed(viewerCtx, &model.FollowedTimelineRequest{})
		require.NoError(t, err)
		require.Len(t, resp.Posts, len(tc.expected))
		for i, body := range tc.expected {
			require.Equal(t, body, resp.Posts[i].Body)
		}
		require.False(t, resp.HasNext)
		require.False(t, resp.HasPrev)
	}
}

func Test_timelineDomain_Followed_pagination(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewTimelineDomain(repository.NewPostRepository(), repository.NewUserRepository())
	jasonCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	resp, err := domain.Followed(jasonCtx, &model.FollowedTimelineRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 2)
	require.Equal(t, testutil.Post4.ID, resp.Posts[0].ID)
	require.Equal(t, testutil.Post2.ID, resp.Posts[1].ID)
	require.True(t, resp.HasNext)
	require.False(t, resp.HasPrev)

	resp, err = domain.Followed(jasonCtx, &model.FollowedTimelineRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 1)
	require.Equal(t, testutil.Post1.ID, resp.Posts[0].ID)
	require.False(t, resp.HasNext)
	require.True(t, resp.HasPrev)

	// Pages past the end are empty, not an error.
	resp, err = domain.Followed(jasonCtx, &model.FollowedTimelineRequest{Page: 3, Limit: 2})
	require.NoError(t, err)
	require.Empty(t, resp.Posts)
	require.False(t, resp.HasNext)
	require.True(t, resp.HasPrev)
}

func Test_timelineDomain_Followed_emptyViewer(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewTimelineDomain(repository.NewPostRepository(), repository.NewUserRepository())

	// A viewer with no posts and no follows gets an empty first page.
	viewerCtx := testutil.MockContextWithUserID(ctx, 999)
	resp, err := domain.Followed(viewerCtx, &model.FollowedTimelineRequest{})
	require.NoError(t, err)
	require.Empty(t, resp.Posts)
	require.False(t, resp.HasNext)
	require.False(t, resp.HasPrev)
}

func Test_timelineDomain_Global(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewTimelineDomain(repository.NewPostRepository(), repository.NewUserRepository())

	resp, err := domain.Global(ctx, &model.GlobalTimelineRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 4)
	require.Equal(t, testutil.Post4.ID, resp.Posts[0].ID)
	require.Equal(t, testutil.Post3.ID, resp.Posts[1].ID)
	require.Equal(t, testutil.Post2.ID, resp.Posts[2].ID)
	require.Equal(t, testutil.Post1.ID, resp.Posts[3].ID)

	// Three per page over four posts leaves a one-post final page.
	resp, err = domain.Global(ctx, &model.GlobalTimelineRequest{Page: 1, Limit: 3})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 3)
	require.True(t, resp.HasNext)
	require.False(t, resp.HasPrev)

	resp, err = domain.Global(ctx, &model.GlobalTimelineRequest{Page: 2, Limit: 3})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 1)
	require.Equal(t, testutil.Post1.ID, resp.Posts[0].ID)
	require.False(t, resp.HasNext)
	require.True(t, resp.HasPrev)
}

func Test_timelineDomain_UserPosts(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewTimelineDomain(repository.NewPostRepository(), repository.NewUserRepository())

	resp, err := domain.UserPosts(ctx, &model.UserPostsRequest{Username: "jason"})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 1)
	require.Equal(t, testutil.Post1.ID, resp.Posts[0].ID)

	var errx errorx.Error
	_, err = domain.UserPosts(ctx, &model.UserPostsRequest{Username: "nobody"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_timelineDomain_pagination_errors(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewTimelineDomain(repository.NewPostRepository(), repository.NewUserRepository())
	jasonCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	var errx errorx.Error
	_, err := domain.Followed(jasonCtx, &model.FollowedTimelineRequest{Page: -1})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = domain.Global(jasonCtx, &model.GlobalTimelineRequest{Limit: 51})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = domain.Global(jasonCtx, &model.GlobalTimelineRequest{Limit: -1})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}
