package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/nicolagi/guestbook/storage"
	"github.com/nicolagi/guestbook/web"
)

func main() {
	configFile := flag.String("config", "guestbook.config", "location of configuration file")
	flag.Parse()

	opts, err := loadConfig(*configFile)
	if err != nil {
		log.WithFields(log.Fields{
			"err":  err,
			"path": *configFile,
		}).Fatal("Could not load configuration")
	}

	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	// A .env file is a local development convenience. It never overrides
	// variables already set in the real environment.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.WithField("err", err).Warn("Could not load .env")
		}
	}

	if err := agent.Listen(agent.Options{
		ShutdownCleanup: true,
	}); err != nil {
		log.WithField("err", err).Warn("Could not start gops agent")
	} else {
		defer agent.Close()
	}

	// Connections are established once, here. A backend that is down now, or
	// goes down later, stays down until the process is restarted; requests
	// degrade to the in-process store instead of failing.
	manager := storage.Connect(context.Background(), storage.ConfigFromEnv())
	defer manager.Close()

	hostname, err := os.Hostname()
	if err != nil {
		log.WithField("err", err).Warn("Could not determine hostname")
		hostname = "unknown"
	}

	srv := &http.Server{
		Addr: opts.Listen,
		Handler: web.New(web.Deps{
			Store:     storage.NewFailover(manager.Primary(), manager.Replica()),
			Hostname:  hostname,
			StaticDir: opts.StaticDir,
		}),
	}

	// Before ListenAndServe, which returns only once Shutdown is called, we
	// need a signal handler in place to call Shutdown.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-c
		log.WithField("signal", sig).Info("Shutting down server")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.WithFields(log.Fields{"err": err}).Warn("Could not shut down the server cleanly")
		}
	}()

	log.WithFields(log.Fields{"addr": opts.Listen}).Info("Listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithField("err", err).Fatal("Could not listen and serve")
	}
}
