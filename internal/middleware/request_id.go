package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pulcro-admin/internal/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID coloca um id de correlação no contexto da requisição e registra
// o resultado ao final.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			ctx context.Context
			id  = c.GetHeader(HeaderRequestID)
		)
		if id != "" {
			ctx = context.WithValue(c.Request.Context(), log.CorrelationIDKey, id)
		} else {
			ctx, id = log.WithCorrelationID(c.Request.Context())
		}

		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		start := time.Now()
		c.Next()

		log.ForContext(ctx).WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request")
	}
}
