package main

import (
	"fmt"
	"net/http"

	"github.com/microblog-lab/backend/internal/middleware"
	"github.com/microblog-lab/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	s.loadConfig(ct)
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	cfg := s.configs.ApiServer
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting api server on %s:%s", cfg.Host, cfg.Port)
	if cfg.Cert != "" && cfg.Key != "" {
		return s.server.ListenAndServeTLS(cfg.Cert, cfg.Key)
	}

	return s.server.ListenAndServe()
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	// Public routes.
	onlyTokenAuthRouter := s.router.Branch()
	onlyTokenAuthRouter.AddCloser(middleware.HandleSaveSession())
	router.POST(onlyTokenAuthRouter, "/register", s.authDomain.Register)
	router.POST(onlyTokenAuthRouter, "/login", s.authDomain.Login)

	router.POST(s.router, "/requestPasswordReset", s.authDomain.RequestPasswordReset)
	router.POST(s.router, "/resetPassword", s.authDomain.ResetPassword)
	router.GET(s.router, "/getOverview", s.statisticDomain.GetOverview)

	// Authenticated routes.
	authVerifier := middleware.NewAuthVerifier().WithAccessToken()
	authRouter := s.router.Branch()
	authRouter.Before(authVerifier.Middleware())
	authRouter.Before(middleware.TouchLastSeen(s.userRepo, s.clock))

	router.GET(authRouter, "/getMe", s.userDomain.GetMe)
	router.GET(authRouter, "/getUser", s.userDomain.GetUser)
	router.POST(authRouter, "/updateUser", s.userDomain.Update)
	router.POST(authRouter, "/changePassword", s.userDomain.ChangePassword)
	router.POST(authRouter, "/deleteUser", s.userDomain.Delete)

	router.POST(authRouter, "/createPost", s.postDomain.Create)
	router.GET(authRouter, "/getPost", s.postDomain.Get)
	router.POST(authRouter, "/deletePost", s.postDomain.Delete)

	router.POST(authRouter, "/follow", s.followDomain.Follow)
	router.POST(authRouter, "/unfollow", s.followDomain.Unfollow)
	router.GET(authRouter, "/getFollowers", s.followDomain.GetFollowers)
	router.GET(authRouter, "/getFollowing", s.followDomain.GetFollowing)

	router.GET(authRouter, "/getFollowedTimeline", s.timelineDomain.Followed)
	router.GET(authRouter, "/getGlobalTimeline", s.timelineDomain.Global)
	router.GET(authRouter, "/getUserPosts", s.timelineDomain.UserPosts)
}
