package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/persistorai/transitroute/internal/api"
	"github.com/persistorai/transitroute/internal/models"
)

func newRouteRouter(svc *mockRouteService) *gin.Engine {
	h := api.NewRouteHandler(svc, testLogger())
	r := gin.New()
	r.GET("/route", h.Get)
	r.POST("/route", h.Post)

	return r
}

func TestRouteHandler_Get(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		planErr  error
		wantCode int
		wantErr  string
		wantQ    models.RouteQuery
	}{
		{
			name:     "plain query",
			path:     "/route?from=1680&to=686",
			wantCode: http.StatusOK,
			wantQ:    models.RouteQuery{From: 1680, To: 686},
		},
		{
			name:     "lists",
			path:     "/route?from=1&to=2&forbidden_routes=20,%2021&forbidden_stops=5,,6",
			wantCode: http.StatusOK,
			wantQ: models.RouteQuery{From: 1, To: 2, Constraints: models.Constraints{
				ForbiddenRoutes: []string{"20", "21"},
				ForbiddenStops:  []int64{5, 6},
			}},
		},
		{
			name:     "allow lists",
			path:     "/route?from=1&to=2&allowed_routes=7&allowed_stops=1,2,3",
			wantCode: http.StatusOK,
			wantQ: models.RouteQuery{From: 1, To: 2, Constraints: models.Constraints{
				AllowedRoutes: []string{"7"},
				AllowedStops:  []int64{1, 2, 3},
			}},
		},
		{name: "missing from", path: "/route?to=2", wantCode: http.StatusBadRequest, wantErr: api.ErrCodeInvalidRequest},
		{name: "bad to", path: "/route?from=1&to=x", wantCode: http.StatusBadRequest, wantErr: api.ErrCodeInvalidRequest},
		{name: "bad stop list", path: "/route?from=1&to=2&forbidden_stops=a", wantCode: http.StatusBadRequest, wantErr: api.ErrCodeInvalidRequest},
		{
			name:     "conflicting constraints",
			path:     "/route?from=1&to=2&forbidden_routes=1&allowed_routes=2",
			planErr:  models.ErrConflictingRouteConstraints,
			wantCode: http.StatusBadRequest,
			wantErr:  api.ErrCodeValidationError,
		},
		{
			name:     "unknown stop",
			path:     "/route?from=1&to=999",
			planErr:  fmt.Errorf("stop 999: %w", models.ErrStopNotFound),
			wantCode: http.StatusNotFound,
			wantErr:  api.ErrCodeNotFound,
		},
		{
			name:     "unexpected failure",
			path:     "/route?from=1&to=2",
			planErr:  errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantErr:  api.ErrCodeInternalError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotQ models.RouteQuery
			svc := &mockRouteService{
				planFn: func(_ context.Context, q models.RouteQuery) (*models.RouteResult, error) {
					gotQ = q
					if tc.planErr != nil {
						return nil, tc.planErr
					}

					return &models.RouteResult{From: q.From, To: q.To}, nil
				},
			}

			w := doRequest(newRouteRouter(svc), http.MethodGet, tc.path, "")
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, w.Code, w.Body.String())
			}

			if tc.wantErr != "" {
				var body map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("invalid JSON: %v", err)
				}
				if body["code"] != tc.wantErr {
					t.Errorf("code = %q, want %q", body["code"], tc.wantErr)
				}

				return
			}

			if !reflect.DeepEqual(gotQ, tc.wantQ) {
				t.Errorf("query = %+v, want %+v", gotQ, tc.wantQ)
			}
		})
	}
}

func TestRouteHandler_Post(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantQ    models.RouteQuery
	}{
		{
			name:     "valid body",
			body:     `{"from": 1289, "to": 686, "forbidden_stops": [12]}`,
			wantCode: http.StatusOK,
			wantQ:    models.RouteQuery{From: 1289, To: 686, Constraints: models.Constraints{ForbiddenStops: []int64{12}}},
		},
		{
			name:     "stop zero is a valid id",
			body:     `{"from": 0, "to": 1}`,
			wantCode: http.StatusOK,
			wantQ:    models.RouteQuery{From: 0, To: 1},
		},
		{name: "missing to", body: `{"from": 1}`, wantCode: http.StatusBadRequest},
		{name: "malformed", body: `{"from": `, wantCode: http.StatusBadRequest},
		{name: "wrong type", body: `{"from": "a", "to": 1}`, wantCode: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotQ models.RouteQuery
			svc := &mockRouteService{
				planFn: func(_ context.Context, q models.RouteQuery) (*models.RouteResult, error) {
					gotQ = q

					return &models.RouteResult{From: q.From, To: q.To}, nil
				},
			}

			w := doRequest(newRouteRouter(svc), http.MethodPost, "/route", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, w.Code, w.Body.String())
			}

			if tc.wantCode == http.StatusOK && !reflect.DeepEqual(gotQ, tc.wantQ) {
				t.Errorf("query = %+v, want %+v", gotQ, tc.wantQ)
			}
		})
	}
}
