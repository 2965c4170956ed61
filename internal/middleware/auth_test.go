package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/microblog-lab/backend/internal/model"
	"github.com/microblog-lab/backend/pkg/authenticator"
	"github.com/microblog-lab/backend/pkg/errorx"
	"github.com/microblog-lab/backend/pkg/testutil"
	"github.com/microblog-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func TestAuthVerifier_Middleware(t *testing.T) {
	ctx := testutil.MockContext()
	middleware := NewAuthVerifier().WithAccessToken().Middleware()

	token, err := xcontext.TokenEngine(ctx).Generate(
		time.Minute, model.AccessToken{ID: 7, Username: "susan"})
	require.NoError(t, err)

	// Bearer header.
	req := httptest.NewRequest(http.MethodGet, "/getMe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newCtx, err := middleware(xcontext.WithHTTPRequest(ctx, req))
	require.NoError(t, err)
	require.Equal(t, int64(7), xcontext.RequestUserID(newCtx))

	// Cookie fallback.
	req = httptest.NewRequest(http.MethodGet, "/getMe", nil)
	req.AddCookie(&http.Cookie{
		Name:  xcontext.Configs(ctx).Auth.AccessToken.Name,
		Value: token,
	})
	newCtx, err = middleware(xcontext.WithHTTPRequest(ctx, req))
	require.NoError(t, err)
	require.Equal(t, int64(7), xcontext.RequestUserID(newCtx))
}

func TestAuthVerifier_Middleware_rejects(t *testing.T) {
	ctx := testutil.MockContext()
	middleware := NewAuthVerifier().WithAccessToken().Middleware()

	var errx errorx.Error

	// No token at all.
	req := httptest.NewRequest(http.MethodGet, "/getMe", nil)
	_, err := middleware(xcontext.WithHTTPRequest(ctx, req))
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)

	// A token signed with another secret.
	forged, err := authenticator.NewTokenEngine("wrong").Generate(
		time.Minute, model.AccessToken{ID: 7, Username: "susan"})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/getMe", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	_, err = middleware(xcontext.WithHTTPRequest(ctx, req))
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
}
