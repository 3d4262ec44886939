package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pacelog/backend/pkg/errorx"
	"github.com/pacelog/backend/pkg/testutil"
)

type echoRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type echoResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

func newEchoMux(method string, handle func(ctx context.Context, req *echoRequest) (*echoResponse, error)) *http.ServeMux {
	mux := http.NewServeMux()
	endpoint := &Endpoint[echoRequest, echoResponse]{
		Method: method,
		Path:   "/echo",
		Handle: handle,
	}
	endpoint.Register(mux, func(r *http.Request) context.Context {
		return testutil.MockContext()
	})

	return mux
}

func Test_Endpoint_GetDecodesQuery(t *testing.T) {
	mux := newEchoMux(http.MethodGet, func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Name: req.Name, Count: req.Count}, nil
	})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/echo?name=pace&count=3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"code": 0, "data": {"name": "pace", "count": 3}}`, w.Body.String())
}

func Test_Endpoint_PostDecodesBody(t *testing.T) {
	mux := newEchoMux(http.MethodPost, func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Name: req.Name, Count: req.Count + 1}, nil
	})

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"name": "pace", "count": 1}`)
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", body))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"code": 0, "data": {"name": "pace", "count": 2}}`, w.Body.String())
}

func Test_Endpoint_PostEmptyBody(t *testing.T) {
	mux := newEchoMux(http.MethodPost, func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Name: req.Name}, nil
	})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"code": 0, "data": {"name": ""}}`, w.Body.String())
}

func Test_Endpoint_MethodNotAllowed(t *testing.T) {
	mux := newEchoMux(http.MethodPost, func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{}, nil
	})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/echo", nil))

	require.JSONEq(t,
		`{"code": 100001, "error": "Not supported method GET"}`, w.Body.String())
}

func Test_Endpoint_ErrorEnvelope(t *testing.T) {
	mux := newEchoMux(http.MethodGet, func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errorx.New(errorx.NotConnected, "Not connected to Strava")
	})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/echo", nil))

	require.JSONEq(t,
		`{"code": 200001, "error": "Not connected to Strava"}`, w.Body.String())
}
