package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDKey is the gin context key for the request ID.
	RequestIDKey = "request_id"

	// RequestIDHeader is the HTTP header used to propagate the request ID.
	RequestIDHeader = "X-Request-ID"

	// clientRequestIDKey holds a client supplied X-Request-ID.
	clientRequestIDKey = "client_request_id"

	maxClientRequestIDLen = 128
)

// RequestID assigns every request a fresh server-side UUID. A client supplied
// X-Request-ID is kept only for log correlation, never as the canonical id.
func RequestID(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()

		if clientID := c.GetHeader(RequestIDHeader); clientID != "" && len(clientID) <= maxClientRequestIDLen {
			log.WithFields(logrus.Fields{
				"request_id":        id,
				"client_request_id": clientID,
			}).Debug("client request id mapped to server id")
			c.Set(clientRequestIDKey, clientID)
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// ClientRequestID returns the client supplied request id, if any.
func ClientRequestID(c *gin.Context) string {
	return c.GetString(clientRequestIDKey)
}
