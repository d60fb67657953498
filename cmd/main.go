package main

import (
	"context"
	"fmt"
	"hrmis/backend/foundation/web"
	"hrmis/backend/internal/auth"
	"hrmis/backend/internal/commands"
	"hrmis/backend/internal/pkg/config"
	"hrmis/backend/internal/pkg/repository/postgresql"
	"hrmis/backend/internal/router"
	"log"
	"os"
	"time"

	"github.com/ardanlabs/conf"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const prefix = "HRMIS"

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, commands.ErrHelp) {
			log.Fatalln("main: error:", err)
		}
	}
}

func run() error {
	var flags struct {
		conf.Version
		ConfigFile string `conf:"default:config.yaml"`
		Migrate    bool   `conf:"default:false"`
	}
	flags.SVN = "1.0.0"
	flags.Desc = "HR management backend"

	if err := conf.Parse(os.Args[1:], prefix, &flags); err != nil {
		switch {
		case errors.Is(err, conf.ErrHelpWanted):
			usage, err := conf.Usage(prefix, &flags)
			if err != nil {
				return errors.Wrap(err, "generating config usage")
			}
			fmt.Println(usage)
			return commands.ErrHelp
		case errors.Is(err, conf.ErrVersionWanted):
			version, err := conf.VersionString(prefix, &flags)
			if err != nil {
				return errors.Wrap(err, "generating config version")
			}
			fmt.Println(version)
			return commands.ErrHelp
		}
		return errors.Wrap(err, "parsing config")
	}

	cfg, err := config.NewConfig(flags.ConfigFile)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	postgresDB := postgresql.NewDatabase(
		cfg.DBUsername,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DisableTLS,
	)

	if flags.Migrate {
		commands.MigrateUP(postgresDB)
	}

	redisDB := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = redisDB.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "connecting to redis")
	}

	authenticator, err := auth.New(cfg.PrivateKeyFile)
	if err != nil {
		return errors.Wrap(err, "constructing auth")
	}

	app := web.NewApp()

	r := router.NewRouter(
		app,
		postgresDB,
		redisDB,
		cfg.ServerPort,
		authenticator,
		"statics",
		time.Duration(cfg.DTRCacheTTLMinutes)*time.Minute,
	)

	return r.Init()
}
