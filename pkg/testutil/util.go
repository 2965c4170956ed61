package testutil

import (
	"context"
	"time"

	"github.com/gorilla/sessions"
	"github.com/microblog-lab/backend/config"
	"github.com/microblog-lab/backend/migration"
	"github.com/microblog-lab/backend/pkg/authenticator"
	"github.com/microblog-lab/backend/pkg/logger"
	"github.com/microblog-lab/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockContext builds a context backed by a fresh in-memory database with
// configs, logger, token engine, and session store installed, i.e. the
// same ambient values a real request carries.
func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env: "testing",
		ApiServer: config.ServerConfigs{
			DefaultLimit: 25,
			MaxLimit:     50,
		},
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
			ResetToken: config.TokenConfigs{
				Name:       "reset_token",
				Expiration: time.Minute,
			},
		},
		Session: config.SessionConfigs{
			Name:   "session",
			Secret: "session-secret",
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.ERROR))
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	ctx = xcontext.WithSessionStore(ctx, sessions.NewCookieStore([]byte(cfg.Session.Secret)))
	ctx = xcontext.WithDB(ctx, db)

	if err := migration.AutoMigrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(ctx context.Context, userID int64) context.Context {
	return xcontext.WithRequestUserID(ctx, userID)
}

// MockClock is a Clock whose time only moves when the test says so.
type MockClock struct {
	Current time.Time
}

func NewMockClock(current time.Time) *MockClock {
	return &MockClock{Current: current}
}

func (c *MockClock) Now() time.Time {
	return c.Current
}

func (c *MockClock) Step(d time.Duration) time.Time {
	c.Current = c.Current.Add(d)
	return c.Current
}
