package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/repstack/coachcore/internal"
	"github.com/repstack/coachcore/internal/config"
	"github.com/repstack/coachcore/internal/db"
	"github.com/repstack/coachcore/internal/logging"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	host := flag.String("host", "localhost", "host for the server")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogsPath,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: false,
		Environment:   cfg.Environment,
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	dbPassword := os.Getenv("COACHCORE_DB_PASSWORD")
	if dbPassword == "" {
		log.Errorf("db password not set, use COACHCORE_DB_PASSWORD env var to set it")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbPool, err := db.NewPool(ctx, db.NewPoolParams{
		DBHost:     cfg.DBHost,
		DBPort:     cfg.DBPort,
		DBName:     cfg.DBName,
		DBUser:     cfg.DBUser,
		DBPassword: dbPassword,
	})
	if err != nil {
		log.Fatalf("create db pool: %s", err)
	}

	server := internal.NewServer(cfg, dbPool)
	server.Serve(*host)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}
