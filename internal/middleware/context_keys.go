package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionIDHeader is sent by the widget to tie anonymous events together.
const SessionIDHeader = "X-Session-ID"

// GetDistinctID returns the analytics identity of the caller: the widget
// session id when present, otherwise the client IP.
func GetDistinctID(c *gin.Context) string {
	if sid := strings.TrimSpace(c.GetHeader(SessionIDHeader)); sid != "" {
		return sid
	}
	return c.ClientIP()
}
