package cep

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const clientKeyCtx = "cep.client"

func clientKey(keyFn KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(clientKeyCtx, keyFn(c.Request))
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.WithFields(log.Fields{
			"client":  c.GetString(clientKeyCtx),
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}
