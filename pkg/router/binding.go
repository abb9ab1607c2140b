package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/biskitsx/ZideQuest-Backend/pkg/errorx"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

// bind fills req from the incoming request: query parameters for GET/DELETE,
// the JSON body otherwise, and path parameters in both cases. Multipart bodies
// are left to the handler, which reads the form itself.
func bind[Request any](ctx context.Context, method string, req *Request) error {
	httpReq := xcontext.HTTPRequest(ctx)

	switch method {
	case http.MethodGet, http.MethodDelete:
		if err := bindValues(req, func(name string) string {
			return httpReq.URL.Query().Get(name)
		}); err != nil {
			return err
		}

	default:
		contentType := httpReq.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "multipart/form-data") {
			b, err := io.ReadAll(httpReq.Body)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Cannot read the request body")
			}

			if len(b) > 0 {
				if err := json.Unmarshal(b, req); err != nil {
					return errorx.New(errorx.BadRequest, "Invalid request body")
				}
			}
		}
	}

	params := xcontext.PathParams(ctx)
	if len(params) == 0 {
		return nil
	}

	return bindValues(req, func(name string) string {
		return params[name]
	})
}

func bindValues[Request any](req *Request, lookup func(name string) string) error {
	v := reflect.ValueOf(req).Elem()
	if v.Kind() != reflect.Struct {
		return nil
	}

	for i := 0; i < v.NumField(); i++ {
		name, _, _ := strings.Cut(v.Type().Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		value := lookup(name)
		if value == "" {
			continue
		}

		pointer := v.Field(i).Addr().Interface()
		switch v.Field(i).Kind() {
		case reflect.String:
			*pointer.(*string) = value

		case reflect.Int:
			n, err := strconv.Atoi(value)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid number for %s", name)
			}
			*pointer.(*int) = n

		case reflect.Float64:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid number for %s", name)
			}
			*pointer.(*float64) = f

		case reflect.Bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid boolean for %s", name)
			}
			*pointer.(*bool) = b
		}
	}

	return nil
}
