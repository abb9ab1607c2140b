package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/biskitsx/ZideQuest-Backend/pkg/errorx"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

var errorNotFoundRoute = errorx.New(errorx.NotFound, "Route not found")

type errorResponse struct {
	Error string `json:"error"`
}

// StatusCode maps an error of the errorx taxonomy to its HTTP status. A nil
// error means 200.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		return http.StatusInternalServerError
	}

	switch errx.Code {
	case errorx.BadRequest, errorx.Unavailable:
		return http.StatusBadRequest
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.Unauthenticated, errorx.PermissionDenied:
		return http.StatusUnauthorized
	case errorx.AlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	errx := errorx.Unknown
	errors.As(err, &errx)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusCode(errx))

	b, merr := json.Marshal(errorResponse{Error: errx.Message})
	if merr != nil {
		return
	}

	w.Write(b)
}

func writeJson(ctx context.Context, w http.ResponseWriter, resp any) {
	b, err := json.Marshal(resp)
	if err != nil {
		xcontext.Logger(ctx).Errorf("cannot write the response: %v", err)
		writeError(w, errorx.New(errorx.BadResponse, "Cannot write the response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(b); err != nil {
		xcontext.Logger(ctx).Errorf("cannot write the response: %v", err)
	}
}
