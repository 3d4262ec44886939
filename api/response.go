package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pacelog/backend/pkg/errorx"
)

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	writeJson(w, response{
		Code:  int64(errx.Code),
		Error: errx.Message,
	})
}

func writeJson(w http.ResponseWriter, resp response) {
	b, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Write(b)
}
