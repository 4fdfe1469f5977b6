package response

import (
	"github.com/gin-gonic/gin"
)

// Resp 统一信封，HTTP 状态码与 success 保持一致
type Resp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func OK(message string, data any) Resp {
	return Resp{Success: true, Message: message, Data: data}
}

// Error 失败时 data 固定为 null
func Error(status int, message string) Resp {
	return Resp{Success: false, Message: msgOr(status, message)}
}

func JSON(c *gin.Context, status int, message string, data any) {
	c.JSON(status, OK(msgOr(status, message), data))
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Error(status, message))
}

func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Error(status, message))
}
