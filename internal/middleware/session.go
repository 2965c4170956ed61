package middleware

import (
	"context"

	"github.com/microblog-lab/backend/pkg/router"
	"github.com/microblog-lab/backend/pkg/xcontext"
)

// AccessTokenResponse is implemented by responses that carry a freshly
// issued access token.
type AccessTokenResponse interface {
	AccessTokenInfo() string
}

// HandleSaveSession stores the issued access token into the cookie
// session so browser clients stay logged in.
func HandleSaveSession() router.CloserFunc {
	return func(ctx context.Context, resp any, err error) {
		if err != nil {
			return
		}

		tokenResp, ok := resp.(AccessTokenResponse)
		if !ok {
			return
		}

		r := xcontext.HTTPRequest(ctx)
		w := xcontext.HTTPWriter(ctx)
		if r == nil || w == nil {
			return
		}

		cfg := xcontext.Configs(ctx)
		session, _ := xcontext.SessionStore(ctx).Get(r, cfg.Session.Name)
		session.Values[cfg.Auth.AccessToken.Name] = tokenResp.AccessTokenInfo()
		if err := session.Save(r, w); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot save session: %v", err)
		}
	}
}
