package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guildpeek/guildpeek/invites"
	"github.com/guildpeek/guildpeek/util"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"github.com/urfave/cli/v2"
)

type Server struct {
	echo    *echo.Echo
	httpd   *http.Server
	invites *invites.Client
}

func serve(cctx *cli.Context) error {
	httpAddress := cctx.String("bind")

	e := echo.New()
	e.HideBanner = true

	srv := &Server{
		echo: e,
		invites: &invites.Client{
			Client: util.NewHTTPClient(),
			Host:   cctx.String("api-host"),
		},
	}

	var (
		httpTimeout        = 1 * time.Minute
		httpMaxHeaderBytes = 1 * (1024 * 1024)
	)
	srv.httpd = &http.Server{
		Handler:        srv,
		Addr:           httpAddress,
		WriteTimeout:   httpTimeout,
		ReadTimeout:    httpTimeout,
		MaxHeaderBytes: httpMaxHeaderBytes,
	}

	e.Use(slogecho.New(slog))
	e.Use(middleware.Recover())
	e.Use(echoprometheus.NewMiddleware("guildpeekd"))
	e.HTTPErrorHandler = srv.errorHandler

	e.GET("/_health", srv.HandleHealthCheck)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/v1/invites/:code", srv.HandleInviteLookup)

	slog.Info("starting server", "bind", httpAddress)
	go func() {
		if err := srv.httpd.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				slog.Error("HTTP server shutting down unexpectedly", "err", err)
			}
		}
	}()

	quit := make(chan struct{})
	exitSignals := make(chan os.Signal, 1)
	signal.Notify(exitSignals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-exitSignals
		slog.Info("received OS exit signal", "signal", sig)
		if err := srv.Shutdown(); err != nil {
			slog.Error("HTTP server shutdown error", "err", err)
		}
		close(quit)
	}()
	<-quit
	slog.Info("graceful shutdown complete")
	return nil
}

func (srv *Server) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	srv.echo.ServeHTTP(rw, req)
}

func (srv *Server) Shutdown() error {
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.httpd.Shutdown(ctx)
}

type GenericStatus struct {
	Daemon  string `json:"daemon"`
	Status  string `json:"status"`
	Message string `json:"msg,omitempty"`
}

func (srv *Server) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}
	if code >= 500 {
		slog.Warn("guildpeekd-internal-error", "err", err)
	}
	c.JSON(code, GenericStatus{Daemon: "guildpeekd", Status: "error", Message: http.StatusText(code)})
}

func (srv *Server) HandleHealthCheck(c echo.Context) error {
	return c.JSON(200, GenericStatus{Status: "ok", Daemon: "guildpeekd"})
}
