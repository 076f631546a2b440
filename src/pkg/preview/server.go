package preview

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	echomw "remote-report/src/pkg/echo-middleware"
	"remote-report/src/pkg/remotes"
	"remote-report/src/pkg/report"
)

// Composer builds today's report without sending it.
type Composer interface {
	Prepare(ctx context.Context) (*report.Payload, *xerr.Error)
}

// ReportComposer loads fresh data on every call and writes the workbook under OutputDir.
type ReportComposer struct {
	Loader    report.Loader
	OutputDir string
	Now       func() time.Time
}

func (r ReportComposer) Prepare(ctx context.Context) (*report.Payload, *xerr.Error) {
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}

	dataset, e := r.Loader.Load(ctx)
	if e != nil {
		return nil, e
	}

	cfg := report.Cfg
	cfg.OutputDir = r.OutputDir
	return report.Prepare(dataset, now, cfg, remotes.Cfg.Labels)
}

/*
NewServer registers the preview routes.

Everything except /healthz needs the bearer token and is rate limited per client IP.
*/
func NewServer(composer Composer, token string, limiter *echomw.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}, echomw.RouteAccessLoggerMiddleware)

	protected := e.Group("/report",
		echomw.RouteAccessLoggerMiddleware,
		limiter.Middleware,
		echomw.RequireBearerToken(token),
	)
	protected.GET("", func(c echo.Context) error {
		payload, prepareErr := composer.Prepare(c.Request().Context())
		if prepareErr != nil {
			return previewFailed(c)
		}
		return c.HTML(http.StatusOK, payload.HTML)
	})
	protected.GET("/workbook", func(c echo.Context) error {
		payload, prepareErr := composer.Prepare(c.Request().Context())
		if prepareErr != nil {
			return previewFailed(c)
		}
		return c.Attachment(payload.WorkbookPath, filepath.Base(payload.WorkbookPath))
	})

	return e
}

func previewFailed(c echo.Context) error {
	tl.Log(tl.Error, palette.Red, "Preview of '%s' %s", c.Path(), "failed")
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "report could not be prepared"})
}
