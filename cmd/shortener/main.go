package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danilovkiri/dk_go_shortify/internal/app"
	"github.com/danilovkiri/dk_go_shortify/internal/config"
	"github.com/danilovkiri/dk_go_shortify/internal/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// get configuration
	cfg := config.NewDefaultConfiguration()
	if err := cfg.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	sugar, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer sugar.Sync()
	// initialize storage, service and server
	application, err := app.New(ctx, cfg, sugar)
	if err != nil {
		sugar.Fatalw("Initialization failed", "error", err)
	}
	// set a listener for os.Signal
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		ctxTO, cancelTO := context.WithTimeout(ctx, 5*time.Second)
		defer cancelTO()
		if err := application.Shutdown(ctxTO); err != nil {
			sugar.Errorw("Server shutdown failed", "error", err)
		}
		cancel()
	}()
	if err := application.Start(); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
	// wait for storage goroutines to finish before exiting
	application.Wait()
	sugar.Info("Server shutdown succeeded")
}
