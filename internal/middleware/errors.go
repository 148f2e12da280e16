package middleware

import (
	"errors"
	"net/http"

	"newsdesk/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrorHandler turns errors collected on the gin context into the JSON
// {msg} bodies the API promises. Domain errors carry their own status;
// store integrity violations are mapped by Postgres error code; anything
// unrecognised is a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}
		err := last.Err

		var apiErr *apperr.Error
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"msg": apiErr.Msg})
			return
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Not found"})
			return
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "22P02": // invalid text representation
				c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad request"})
				return
			case "23502": // not-null violation
				c.JSON(http.StatusBadRequest, gin.H{"msg": "Assignment of a Null value to a Not Null Column"})
				return
			case "23505": // unique violation
				c.JSON(http.StatusBadRequest, gin.H{"msg": "Assignment of value to existing primary key"})
				return
			case "23503": // foreign-key violation
				c.JSON(http.StatusBadRequest, gin.H{"msg": "Violates foreign key constraint"})
				return
			}
		}

		log.WithError(err).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
	}
}
