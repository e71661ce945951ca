package server

import (
	"net/http"

	"app/internal/config"
	appmw "app/internal/middleware"
	"app/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 全ハンドラはRegisterRoutesを持つ
type Handlers struct {
	Product      RouteRegistrar
	Order        RouteRegistrar
	Setting      RouteRegistrar
	AdminAuth    GuardedRouteRegistrar
	AdminProduct GuardedRouteRegistrar
	AdminOrder   GuardedRouteRegistrar
	AdminSetting GuardedRouteRegistrar
	AdminStats   GuardedRouteRegistrar
	Upload       GuardedRouteRegistrar
}

type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

type GuardedRouteRegistrar interface {
	RegisterRoutes(e *echo.Echo, guard echo.MiddlewareFunc)
}

// NewはEchoを組み立てて返す。起動は呼び出し側で行う。
func New(cfg config.Config, h Handlers, sessions repository.SessionRepository, admins repository.AdminRepository) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowCredentials: true,
	}))
	e.Use(appmw.RequestMetrics())

	// アップロード画像は保存レイアウトそのままのURLで配信する
	e.Static("/uploads", cfg.UploadDir)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	guard := appmw.AdminSessionGuard(sessions, admins)

	h.Product.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Setting.RegisterRoutes(e)
	h.AdminAuth.RegisterRoutes(e, guard)
	h.AdminProduct.RegisterRoutes(e, guard)
	h.AdminOrder.RegisterRoutes(e, guard)
	h.AdminSetting.RegisterRoutes(e, guard)
	h.AdminStats.RegisterRoutes(e, guard)
	h.Upload.RegisterRoutes(e, guard)

	return e
}
