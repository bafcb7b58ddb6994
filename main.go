// Package main provides the entry point for the Volume Viewer application.
package main

import (
	"os"
	"path/filepath"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"volview/internal/app"
	"volview/internal/client"
	"volview/internal/scene"
	"volview/internal/version"
	"volview/ui/mainwindow"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := app.LoadConfig(configPath())
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	log.WithFields(logrus.Fields{
		"version": version.Version,
		"backend": cfg.Backend.BaseURL,
	}).Info("starting volume viewer")

	state := app.NewState()
	state.SetWindow(cfg.Display.WindowCenter, cfg.Display.WindowWidth)

	backend := client.New(cfg.Backend.BaseURL,
		time.Duration(cfg.Backend.TimeoutSeconds)*time.Second, log)

	sc := scene.New(cfg.MeshFillColor())
	scheduler := scene.NewScheduler(sc, cfg.Display.RenderFPS, log, nil)

	fyneApp := fyneapp.NewWithID("io.volview.viewer")
	win := mainwindow.New(fyneApp, state, scheduler, backend, log)

	scheduler.SetOnFrame(win.MeshView().SetFrame)
	scheduler.Start()
	defer scheduler.Stop()

	win.ShowAndRun()
}

// configPath looks for volview.yaml next to the binary, then in the working
// directory.
func configPath() string {
	if exe, err := os.Executable(); err == nil {
		p := filepath.Join(filepath.Dir(exe), "volview.yaml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return "volview.yaml"
}
