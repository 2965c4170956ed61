package config

import (
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Load builds the configuration from defaults, an optional toml file, and
// finally environment variables. Later sources win.
func Load(path string) (Configs, error) {
	cfg := Configs{
		Env: "local",
		Database: DatabaseConfigs{
			Driver:     "sqlite",
			SQLitePath: "microblog.db",
		},
		ApiServer: ServerConfigs{
			Port:         "8080",
			DefaultLimit: 25,
			MaxLimit:     50,
		},
		Auth: AuthConfigs{
			AccessToken: TokenConfigs{Name: "access_token", Expiration: 24 * time.Hour},
			ResetToken:  TokenConfigs{Name: "reset_token", Expiration: 10 * time.Minute},
		},
		Session: SessionConfigs{Name: "session"},
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	loadString(&cfg.Env, "ENV")
	loadString(&cfg.Database.Driver, "DB_DRIVER")
	loadString(&cfg.Database.Host, "DB_HOST")
	loadString(&cfg.Database.Port, "DB_PORT")
	loadString(&cfg.Database.Database, "DB_NAME")
	loadString(&cfg.Database.User, "DB_USER")
	loadString(&cfg.Database.Password, "DB_PASSWORD")
	loadString(&cfg.Database.SQLitePath, "SQLITE_PATH")
	loadString(&cfg.ApiServer.Host, "HOST")
	loadString(&cfg.ApiServer.Port, "PORT")
	loadInt(&cfg.ApiServer.DefaultLimit, "POSTS_PER_PAGE")
	loadInt(&cfg.ApiServer.MaxLimit, "MAX_POSTS_PER_PAGE")
	loadString(&cfg.Auth.TokenSecret, "TOKEN_SECRET")
	loadString(&cfg.Session.Secret, "SESSION_SECRET")

	return cfg, nil
}

func loadString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func loadInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
