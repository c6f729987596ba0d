package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/transitroute/internal/middleware"
)

// maxListItems caps each comma separated constraint list.
const maxListItems = 1000

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}
		if cid := middleware.ClientRequestID(c); cid != "" {
			fields["client_request_id"] = cid
		}
		log.WithFields(fields).Info("request")
	}
}

// parseStopID parses a stop id from a path or query parameter.
func parseStopID(name, s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%s is required", name)
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer stop id", name)
	}

	return id, nil
}

// splitList splits a comma separated parameter, dropping empty items.
func splitList(name, s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}

	var out []string

	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	if len(out) > maxListItems {
		return nil, fmt.Errorf("%s accepts at most %d items", name, maxListItems)
	}

	return out, nil
}

// parseIDList parses a comma separated list of stop ids.
func parseIDList(name, s string) ([]int64, error) {
	items, err := splitList(name, s)
	if err != nil || items == nil {
		return nil, err
	}

	ids := make([]int64, 0, len(items))

	for _, item := range items {
		id, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s contains invalid stop id %q", name, item)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
