package server

import (
	"context"
	"errors"
	"farebot/app/config"
	"farebot/app/service/dialog"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	cfg       *config.Config
	dialogSvc *dialog.Service
	app       *fiber.App
}

func New(di *do.Injector) (*Server, error) {
	return NewServer(
		do.MustInvoke[*config.Config](di),
		do.MustInvoke[*dialog.Service](di),
	), nil
}

func NewServer(cfg *config.Config, dialogSvc *dialog.Service) *Server {
	s := &Server{
		cfg:       cfg,
		dialogSvc: dialogSvc,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Post("/webhook", s.handleWebhook)

	s.app = app

	return s
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) handleWebhook(c *fiber.Ctx) error {
	var req dialog.WebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid webhook payload")
	}

	start := time.Now()
	resp := s.dialogSvc.HandleTurn(c.UserContext(), &req)

	slog.Info("Processed turn",
		"intent", req.QueryResult.Intent.DisplayName,
		"session", req.Session,
		"duration", time.Since(start),
	)

	return c.JSON(resp)
}

func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.app.Listen(s.cfg.Server.Listen)
	})

	g.Go(func() error {
		<-ctx.Done()
		return s.app.Shutdown()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
