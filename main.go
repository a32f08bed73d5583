package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/fpl_analyzer/chart"
	"github.com/mww/fpl_analyzer/config"
	"github.com/mww/fpl_analyzer/controller"
	"github.com/mww/fpl_analyzer/fpl"
	"github.com/mww/fpl_analyzer/web"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	a, err := newApp(cfg, clock.New())
	if err != nil {
		log.Fatalf("%v", err)
	}

	// Catch ctrl-c so the web server can shutdown properly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := a.run(ctx); err != nil {
		log.Fatalf("analysis failed: %v", err)
	}
}

type app struct {
	ctrl      controller.C
	presenter *chart.Presenter
	// Only set for the web surface.
	server *web.Server
}

func newApp(cfg config.Config, clock clock.Clock) (*app, error) {
	fplClient, err := fpl.New(cfg.FPLBaseURL, cfg.FPLTimeout, cfg.FPLRetryDelay, clock)
	if err != nil {
		return nil, fmt.Errorf("error creating fpl client: %w", err)
	}

	ctrl, err := controller.New(clock, fplClient)
	if err != nil {
		return nil, fmt.Errorf("error creating a new controller: %w", err)
	}

	style := chart.DefaultStyle()
	if cfg.ChartWidth > 0 {
		style.Width = cfg.ChartWidth
	}
	if cfg.ChartHeight > 0 {
		style.Height = cfg.ChartHeight
	}

	a := &app{ctrl: ctrl}
	var surface chart.Surface
	switch cfg.Surface {
	case config.SurfaceWeb:
		gallery := web.NewGallery(clock)
		a.server, err = web.NewServer(cfg.Port, gallery)
		if err != nil {
			return nil, fmt.Errorf("error creating new web server: %w", err)
		}
		if err := a.server.Listen(); err != nil {
			return nil, fmt.Errorf("error starting web server: %w", err)
		}
		surface = gallery
	case config.SurfaceDir:
		dir, err := chart.NewDirSurface(cfg.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("error creating output directory: %w", err)
		}
		surface = dir
	}

	a.presenter, err = chart.New(style, surface)
	if err != nil {
		return nil, fmt.Errorf("error creating chart presenter: %w", err)
	}
	return a, nil
}

// run presents every chart. With the web surface it keeps serving the gallery
// until ctx is done.
func (a *app) run(ctx context.Context) error {
	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	if a.server != nil {
		wg.Add(1)
		go a.server.Serve(shutdown, wg)
	}

	runErr := a.ctrl.Run(ctx, a.presenter)
	if a.server == nil {
		return runErr
	}

	if runErr == nil {
		<-ctx.Done()
	}
	close(shutdown)
	if err := waitTimeout(wg, 10*time.Second); err != nil {
		return errors.Join(runErr, fmt.Errorf("error shutting down server: %w", err))
	}
	log.Infof("server shutdown")
	return runErr
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
