package main

import (
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/vkngwrapper/hike/bootstrap"
)

func main() {
	runtime.LockOSThread()

	cfg := bootstrap.DefaultConfig()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.LogLevel)

	app := &bootstrap.Application{
		Config:     cfg,
		Platform:   sdlPlatform{},
		OpenLoader: openLoader,
		Log:        log,
	}

	err := app.Run()
	if err != nil {
		log.Errorf("%+v", err)
		if hint := errors.FlattenHints(err); hint != "" {
			log.Info(hint)
		}
		os.Exit(1)
	}
}
