// file: utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// 统一响应信封：
//   成功 -> {"success": true, "data": ...}
//   失败 -> {"success": false, "error": {"code": ..., "message": ...}}
// 提交 Flag 接口有单独约定的响应体，不走 Success

type errorBody struct {
	Code    ErrorKind `json:"code"`
	Message string    `json:"message"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func Fail(c *gin.Context, status int, kind ErrorKind, msg string) {
	c.JSON(status, gin.H{"success": false, "error": errorBody{Code: kind, Message: msg}})
}

// FailError 服务层错误映射为错误信封
func FailError(c *gin.Context, err error) {
	appErr := AsAppError(err)
	Fail(c, appErr.HTTPStatus(), appErr.Kind, appErr.Message)
}
