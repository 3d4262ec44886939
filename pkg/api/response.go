package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Response struct {
	Code    int
	Header  http.Header
	RawBody []byte
}

// OK reports whether the response carries a 2xx status.
func (r *Response) OK() bool {
	return r.Code >= 200 && r.Code < 300
}

// Decode unmarshals the body into a typed value. Third-party payloads are
// decoded into explicit boundary models immediately, never carried around as
// dynamic maps.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.RawBody, v); err != nil {
		return fmt.Errorf("cannot decode response body: %w", err)
	}

	return nil
}
