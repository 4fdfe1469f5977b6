package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"inventory-api/internal/core/config"
	"inventory-api/internal/core/server"
	"inventory-api/internal/service"
	httpez "inventory-api/internal/transport/http/ez"
	"inventory-api/internal/transport/http/handler"
	mdw "inventory-api/internal/transport/http/middleware"
	resp "inventory-api/internal/transport/http/response"
)

type Deps struct {
	Auth     *service.AuthService
	Items    *service.ItemService
	Activity *service.ActivityService
}

func NewAPIEngine(l *zap.Logger, hc config.HTTP, d Deps) *gin.Engine {
	r := server.NewRouter(l, hc.CORSOrigins)

	// 中间件；限流类配置 <= 0 表示关闭
	mws := []gin.HandlerFunc{mdw.RequestID()}
	if hc.RateLimitRPS > 0 {
		mws = append(mws, mdw.RateLimit(rate.Limit(hc.RateLimitRPS), hc.RateLimitBurst))
	}
	if hc.PerIPRPS > 0 {
		mws = append(mws, mdw.RateLimitPerIP(rate.Limit(hc.PerIPRPS), hc.PerIPBurst))
	}
	if hc.MaxInFlight > 0 {
		mws = append(mws, mdw.ConcurrencyLimit(hc.MaxInFlight))
	}
	if hc.MaxBodyBytes > 0 {
		mws = append(mws, mdw.MaxBodyBytes(hc.MaxBodyBytes))
	}
	if hc.RequestTimeoutSec > 0 {
		mws = append(mws, mdw.Timeout(time.Duration(hc.RequestTimeoutSec)*time.Second))
	}
	mws = append(mws, mdw.SimpleRecovery(l), mdw.Metrics(), mdw.AccessLog(l))
	r.Use(mws...)

	// 健康检查
	r.GET("/health", func(c *gin.Context) { resp.JSON(c, http.StatusOK, "OK", nil) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.NoRoute(func(c *gin.Context) { resp.Fail(c, http.StatusNotFound, "Route not found") })

	// 前缀
	api := r.Group("/api")
	var reg Registry
	reg.Register(handler.NewAuthHandler(d.Auth))
	reg.MountAll(httpez.New(api, l))

	// 鉴权分组
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(d.Auth))
	var authedReg Registry
	authedReg.Register(handler.NewItemHandler(d.Items, d.Activity))
	authedReg.MountAll(httpez.New(authed, l))

	return r
}
