package handlers

import (
	"strconv"

	"newsdesk/internal/apperr"

	"github.com/gin-gonic/gin"
)

// fail records err on the context for the error middleware and stops the
// chain.
func fail(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}

// pathID parses an integer path parameter. A non-numeric id is the same
// 400 the store would raise for invalid input syntax.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		fail(c, apperr.BadRequest("Bad request"))
		return 0, false
	}
	return id, true
}

// queryInt parses an optional positive integer query parameter,
// returning def when it is absent.
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		fail(c, apperr.BadRequest("Bad request"))
		return 0, false
	}
	return n, true
}
