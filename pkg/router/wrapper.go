package router

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"

	"github.com/microblog-lab/backend/pkg/errorx"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	befores := append([]MiddlewareFunc{}, router.befores...)
	closers := append([]CloserFunc{}, router.closers...)

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := router.newRequestContext(r, w)

		var err error
		for _, m := range befores {
			if ctx, err = m(ctx); err != nil {
				break
			}
		}

		var resp *Response
		if err == nil {
			var req Request
			if bindErr := bindRequest(r, method, &req); bindErr != nil {
				err = errorx.New(errorx.BadRequest, "Cannot parse the request")
			} else {
				resp, err = handler(ctx, &req)
			}
		}

		writeResponse(ctx, w, resp, err)

		for _, c := range closers {
			if resp == nil {
				c(ctx, nil, err)
			} else {
				c(ctx, resp, err)
			}
		}
	}
}

// bindRequest fills the request struct from the query string for GET
// requests and from the JSON body otherwise. Query parameters are mapped
// by json tag and support string and integer fields.
func bindRequest(r *http.Request, method string, req any) error {
	if method != http.MethodGet {
		if r.Body == nil {
			return nil
		}

		decoder := json.NewDecoder(r.Body)
		if err := decoder.Decode(req); err != nil && err.Error() != "EOF" {
			return err
		}

		return nil
	}

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
}
