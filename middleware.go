package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// quietPrefixes are paths whose requests are served without a log line.
var quietPrefixes = []string{"/static/", "/images/", "/favicon"}

// visitorHasher hashes client IPs with a per-process salt so request logs
// never carry a raw address.
type visitorHasher struct {
	salt string
}

func newVisitorHasher() (*visitorHasher, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return &visitorHasher{salt: hex.EncodeToString(b)}, nil
}

// hash is consistent per IP for the life of the process.
func (v *visitorHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + v.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// requestLogger logs each page request with a hashed visitor id. Asset
// paths are skipped and a DNT header drops the visitor field.
func requestLogger(logger *zap.Logger, hasher *visitorHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range quietPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.Int("bytes", c.Writer.Size()),
		}
		if c.GetHeader("DNT") != "1" {
			fields = append(fields, zap.String("visitor", hasher.hash(c.ClientIP())))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("request completed", fields...)
		case status >= 400:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}
