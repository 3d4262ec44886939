package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/pacelog/backend/pkg/errorx"
	"github.com/pacelog/backend/pkg/xcontext"
)

// ContextFunc builds the base context of a request, carrying the configs,
// logger, database, and http client.
type ContextFunc func(r *http.Request) context.Context

type Endpoint[Request, Response any] struct {
	Method string
	Path   string
	Handle func(ctx context.Context, req *Request) (*Response, error)
}

func (e *Endpoint[Request, Response]) Register(mux *http.ServeMux, baseCtx ContextFunc) {
	mux.HandleFunc(e.Path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.Method != e.Method {
			writeError(w, errorx.New(errorx.BadRequest, "Not supported method %s", r.Method))
			return
		}

		ctx := baseCtx(r)

		var req Request
		if err := e.readRequest(r, &req); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot read the request: %v", err)
			writeError(w, errorx.New(errorx.BadRequest, "Cannot read the request"))
			return
		}

		resp, err := e.Handle(ctx, &req)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJson(w, response{Data: resp})
	})
}

func (e *Endpoint[Request, Response]) readRequest(r *http.Request, req *Request) error {
	switch e.Method {
	case http.MethodGet, http.MethodDelete:
		v := reflect.ValueOf(req).Elem()
		for i := 0; i < v.NumField(); i++ {
			name := v.Type().Field(i).Tag.Get("json")
			queryVal := r.URL.Query().Get(name)
			if queryVal == "" {
				continue
			}

			switch v.Field(i).Kind() {
			case reflect.String:
				v.Field(i).SetString(queryVal)

			case reflect.Int, reflect.Int64:
				val, err := strconv.ParseInt(queryVal, 10, 64)
				if err != nil {
					return err
				}
				v.Field(i).SetInt(val)
			}
		}

		return nil

	default:
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return err
		}

		if len(b) == 0 {
			return nil
		}

		return json.Unmarshal(b, req)
	}
}
