package repository_test

import (
	"testing"

	"github.com/microblog-lab/backend/internal/entity"
	"github.com/microblog-lab/backend/internal/repository"
	"github.com/microblog-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_followerRepository_duplicateEdge(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	followerRepo := repository.NewFollowerRepository()

	// jason->jun already exists in the fixture; the composite primary key
	// must reject a second insert.
	err := followerRepo.Create(ctx, &entity.Follower{
		FollowerID: testutil.User1.ID,
		FollowedID: testutil.User2.ID,
	})
	require.Error(t, err)

	count, err := followerRepo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(4), count)
}

func Test_followerRepository_GetAndDelete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	followerRepo := repository.NewFollowerRepository()

	edge, err := followerRepo.Get(ctx, testutil.User1.ID, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, edge.FollowerID)
	require.Equal(t, testutil.User2.ID, edge.FollowedID)

	_, err = followerRepo.Get(ctx, testutil.User2.ID, testutil.User1.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, followerRepo.Delete(ctx, testutil.User1.ID, testutil.User2.ID))
	_, err = followerRepo.Get(ctx, testutil.User1.ID, testutil.User2.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting an absent edge is not an error.
	require.NoError(t, followerRepo.Delete(ctx, testutil.User1.ID, testutil.User2.ID))
}

func Test_followerRepository_lists(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	followerRepo := repository.NewFollowerRepository()

	// jason follows jun and john; usernames come back alphabetically.
	following, err := followerRepo.GetFollowingList(ctx, testutil.User1.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, following, 2)
	require.Equal(t, "john", following[0].Username)
	require.Equal(t, "jun", following[1].Username)

	// john is followed by jason and jack.
	followers, err := followerRepo.GetFollowerList(ctx, testutil.User4.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	require.Equal(t, "jack", followers[0].Username)
	require.Equal(t, "jason", followers[1].Username)

	count, err := followerRepo.CountFollowing(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	count, err = followerRepo.CountFollowers(ctx, testutil.User4.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	count, err = followerRepo.CountFollowers(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}
