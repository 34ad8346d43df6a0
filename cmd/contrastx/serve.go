package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/browser"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/phyten/contrastx/internal/web"
)

var openBrowser = browser.OpenURL

const shutdownTimeout = 5 * time.Second

func serveAction(ctx context.Context, cmd *cli.Command) error {
	settings, err := serveSettings(ctx, cmd)
	if err != nil {
		return err
	}
	check, err := checkSettings(ctx, cmd)
	if err != nil {
		return err
	}
	log := envFromContext(ctx).Log

	mux := http.NewServeMux()
	web.Register(mux, &web.Handler{
		Log: log.Named("http"),
		Defaults: web.Defaults{
			MinRatio:   check.MinRatio,
			Jobs:       check.Jobs,
			Background: check.Background,
		},
	})

	ln, err := net.Listen("tcp", settings.Addr)
	if err != nil {
		return fmt.Errorf("unable to listen on %s: %w", settings.Addr, err)
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	base := "http://" + ln.Addr().String()
	fmt.Fprintf(cmd.Root().Writer, "contrastx listening on %s\n", base)
	log.Debug("Server started", zap.String("addr", ln.Addr().String()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	if settings.Open {
		target := base + "/api/parse?color=" + url.QueryEscape("rebeccapurple")
		if err := openBrowser(target); err != nil {
			log.Warn("Unable to open browser", zap.String("url", target), zap.Error(err))
		}
	}
	err = g.Wait()
	log.Debug("Server stopped")
	return err
}
