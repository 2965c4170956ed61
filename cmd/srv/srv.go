package main

import (
	"net/http"

	"github.com/microblog-lab/backend/config"
	"github.com/microblog-lab/backend/internal/domain"
	"github.com/microblog-lab/backend/internal/repository"
	"github.com/microblog-lab/backend/pkg/logger"
	"github.com/microblog-lab/backend/pkg/router"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	followerRepo repository.FollowerRepository

	authDomain      domain.AuthDomain
	userDomain      domain.UserDomain
	postDomain      domain.PostDomain
	followDomain    domain.FollowDomain
	timelineDomain  domain.TimelineDomain
	statisticDomain domain.StatisticDomain

	clock domain.Clock

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(ct *cli.Context) {
	cfg, err := config.Load(ct.String("config"))
	if err != nil {
		panic(err)
	}

	s.configs = &cfg
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
}

func (s *srv) loadDatabase() {
	var dialector gorm.Dialector
	switch s.configs.Database.Driver {
	case "mysql":
		dialector = mysql.New(mysql.Config{
			DSN:                       s.configs.Database.ConnectionString(),
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		})
	default:
		dialector = sqlite.Open(s.configs.Database.SQLitePath)
	}

	var err error
	s.db, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.postRepo = repository.NewPostRepository()
	s.followerRepo = repository.NewFollowerRepository()
}

func (s *srv) loadDomains() {
	s.clock = domain.NewRealClock()

	s.authDomain = domain.NewAuthDomain(s.userRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.postRepo, s.followerRepo)
	s.postDomain = domain.NewPostDomain(s.postRepo, s.clock)
	s.followDomain = domain.NewFollowDomain(s.userRepo, s.followerRepo)
	s.timelineDomain = domain.NewTimelineDomain(s.postRepo, s.userRepo)
	s.statisticDomain = domain.NewStatisticDomain(s.userRepo, s.postRepo, s.followerRepo)
}
