package domain

import (
	"testing"
	"time"

	"github.com/microblog-lab/backend/internal/model"
	"github.com/microblog-lab/backend/internal/repository"
	"github.com/microblog-lab/backend/pkg/errorx"
	"github.com/microblog-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_postDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	clock := testutil.NewMockClock(testutil.FixtureTime.Add(time.Hour))
	domain := NewPostDomain(repository.NewPostRepository(), clock)
	jasonCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	resp, err := domain.Create(jasonCtx, &model.CreatePostRequest{
		Body:     "hello world",
		Language: "en",
	})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, resp.AuthorID)
	require.Equal(t, "hello world", resp.Body)
	require.Equal(t, "en", resp.Language)
	require.Equal(t, clock.Current.Format(model.DefaultTimeLayout), resp.CreatedAt)

	var errx errorx.Error
	_, err = domain.Create(jasonCtx, &model.CreatePostRequest{Body: "   "})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_postDomain_Create_languageNormalization(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewPostDomain(
		repository.NewPostRepository(),
		testutil.NewMockClock(testutil.FixtureTime),
	)
	jasonCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	testcases := []struct {
		language string
		expected string
	}{
		{"en", "en"},
		{"pt-BR", "pt-BR"},
		{"UNKNOWN", ""},
		{"zh-Hant", ""},
		{"", ""},
	}

	for _, tc := range testcases {
		resp, err := domain.Create(jasonCtx, &model.CreatePostRequest{
			Body:     "some text",
			Language: tc.language,
		})
		require.NoError(t, err)
		require.Equal(t, tc.expected, resp.Language)
	}
}

func Test_postDomain_GetAndDelete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewPostDomain(
		repository.NewPostRepository(),
		testutil.NewMockClock(testutil.FixtureTime),
	)

	resp, err := domain.Get(ctx, &model.GetPostRequest{ID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Equal(t, "post from jason", resp.Body)

	var errx errorx.Error
	_, err = domain.Get(ctx, &model.GetPostRequest{ID: 999})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)

	// Only the author can delete.
	junCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	_, err = domain.Delete(junCtx, &model.DeletePostRequest{ID: testutil.Post1.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	jasonCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	_, err = domain.Delete(jasonCtx, &model.DeletePostRequest{ID: testutil.Post1.ID})
	require.NoError(t, err)

	_, err = domain.Get(ctx, &model.GetPostRequest{ID: testutil.Post1.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}
