package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/session"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(conf.Level())

	terminal := ui.NewTerminal(os.Stdin, color.Stdout, conf.Display.Delay)
	s, err := session.New(conf.Session(), terminal, session.WithLogger(logger))
	if err != nil {
		logger.WithError(err).Fatal("could not set up the table")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = s.Run(ctx)
	switch {
	case err == nil, errors.Is(err, consts.ErrorsExist), errors.Is(err, consts.ErrorsChanClosed), errors.Is(err, context.Canceled):
	default:
		logger.WithError(err).Error("game stopped")
		os.Exit(1)
	}
}
