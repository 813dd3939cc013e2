package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-auth-api/auth"
	"github.com/jrsteele09/go-auth-api/internal/config"
	"github.com/jrsteele09/go-auth-api/internal/database"
	"github.com/jrsteele09/go-auth-api/server"
	"github.com/jrsteele09/go-auth-api/token"
	refreshreposqlite "github.com/jrsteele09/go-auth-api/token/refresh/reposqlite"
	userreposqlite "github.com/jrsteele09/go-auth-api/users/reposqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "config.Load")
	}
	configureLogging(cfg)
	displayAppname(cfg.AppName)

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		return errors.Wrap(err, "database.Open")
	}
	defer db.Close()

	codec, err := token.NewCodec(cfg)
	if err != nil {
		return errors.Wrap(err, "token.NewCodec")
	}

	authService, err := auth.NewService(auth.Repos{
		Users:         userreposqlite.NewSQLiteUserRepo(db),
		RefreshTokens: refreshreposqlite.NewSQLiteRefreshTokenRepo(db),
	}, codec, auth.WithLogger(log.Logger))
	if err != nil {
		return errors.Wrap(err, "auth.NewService")
	}

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.New(cfg, authService, log.Logger),
	}
	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

func listenAndServe(httpServer *http.Server) {
	log.Info().Str("addr", httpServer.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server.Shutdown")
	}
	return nil
}

func configureLogging(cfg *config.Config) {
	if cfg.IsDev() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
