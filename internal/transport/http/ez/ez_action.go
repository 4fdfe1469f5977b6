// Package ez 一行注册一个接口：绑定入参、鉴权检查、错误映射、统一信封
package ez

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inventory-api/internal/core/errs"
	mdw "inventory-api/internal/transport/http/middleware"
	resp "inventory-api/internal/transport/http/response"
)

type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, l *zap.Logger) EZ { return EZ{g: g, log: l} }

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param 取
)

// Action I 入参，O 出参
type Action[I any, O any] struct {
	Method  string // "GET" | "POST" | "PUT" | "PATCH" | "DELETE"
	Path    string // 例："/items/:id/stock"
	Binder  Binder
	Auth    bool   // 是否要求登录（检查 userId）
	Status  int    // 成功时的状态码，默认 200
	Message string // 成功时的 message
	Handler func(c *gin.Context, in *I) (O, error)
}

// UserID 鉴权中间件写入的当前用户
func UserID(c *gin.Context) string { return c.GetString(mdw.KeyUserID) }

// RegisterAction 在当前 EZ 下注册动作接口
func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}

	h := func(c *gin.Context) {
		// 1) 鉴权
		if a.Auth && UserID(c) == "" {
			resp.Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// 2) 绑定入参
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default: // BindNone: 不绑定
		}
		if bindErr != nil {
			e.log.Debug("bind request failed", zap.String("path", c.FullPath()), zap.Error(bindErr))
			resp.Fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		// 3) 执行
		out, err := a.Handler(c, &in)

		// 4) 统一错误映射
		if err != nil {
			e.fail(c, err)
			return
		}
		resp.JSON(c, status, a.Message, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodPatch:
		e.g.PATCH(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default: // 默认 POST
		e.g.POST(a.Path, h)
	}
}

// fail 内部错误只记日志，不把细节回给调用方
func (e EZ) fail(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	if kind == errs.KindInternal {
		e.log.Error("request failed",
			zap.String("rid", c.GetString(mdw.KeyRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		resp.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp.Fail(c, kind.Status(), err.Error())
}
