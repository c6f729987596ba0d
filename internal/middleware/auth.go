package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// authTimingFloor is the minimum response time for rejected requests so a
// client cannot learn anything about the key from response timing.
const authTimingFloor = 50 * time.Millisecond

// enforceTimingFloor sleeps if needed so the response takes at least authTimingFloor.
func enforceTimingFloor(start time.Time) {
	if elapsed := time.Since(start); elapsed < authTimingFloor {
		time.Sleep(authTimingFloor - elapsed)
	}
}

// APIKeyAuth returns Gin middleware that requires "Authorization: Bearer <apiKey>".
// Clients locked out by guard are rejected before the key is checked; guard may be nil.
func APIKeyAuth(apiKey string, log *logrus.Logger, guard *BruteForceGuard) gin.HandlerFunc {
	want := []byte(apiKey)

	return func(c *gin.Context) {
		start := time.Now()
		client := c.ClientIP()

		if guard != nil && guard.IsBlocked(client) {
			respondError(c, http.StatusTooManyRequests, "rate_limited", "too many failed authentication attempts")

			return
		}

		defer func() {
			if c.Writer.Status() == http.StatusUnauthorized {
				enforceTimingFloor(start)
			}
		}()

		got := ExtractBearerToken(c)
		if got == "" {
			respondError(c, http.StatusUnauthorized, "unauthorized", "missing or invalid authorization header")

			return
		}

		if subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			logAuthFailure(log, c, got)

			if guard != nil {
				guard.RecordFailure(client)
			}

			respondError(c, http.StatusUnauthorized, "unauthorized", "invalid api key")

			return
		}

		if guard != nil {
			guard.Reset(client)
		}

		c.Next()
	}
}

// ExtractBearerToken extracts the API key from the Authorization header.
func ExtractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}

	return strings.TrimPrefix(header, "Bearer ")
}

// truncateKey returns at most the first 4 characters of key followed by "...".
func truncateKey(key string) string {
	if len(key) > 4 {
		return key[:4] + "..."
	}

	return key
}

// logAuthFailure logs a failed authentication attempt.
func logAuthFailure(log *logrus.Logger, c *gin.Context, apiKey string) {
	log.WithFields(logrus.Fields{
		"client_ip":  c.ClientIP(),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"user_agent": c.Request.UserAgent(),
		"request_id": c.GetString(RequestIDKey),
		"key_prefix": truncateKey(apiKey),
	}).Warn("authentication failed: invalid api key")
}
