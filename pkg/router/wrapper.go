package router

import (
	"net/http"

	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	r *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		ctx = xcontext.WithConfigs(ctx, r.cfg)
		ctx = xcontext.WithLogger(ctx, r.logger)
		ctx = xcontext.WithDB(ctx, r.db)
		ctx = xcontext.WithTokenEngine(ctx, r.accessTokenEngine)
		ctx = xcontext.WithHTTPRequest(ctx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)

		resp, err := func() (*Response, error) {
			var err error
			for _, middleware := range r.befores {
				newCtx, err := middleware(ctx)
				if err != nil {
					return nil, err
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}

			var request Request
			if err := bind(ctx, method, &request); err != nil {
				return nil, err
			}

			resp, err := handler(ctx, &request)
			if err != nil {
				return nil, err
			}

			for _, middleware := range r.afters {
				newCtx, err := middleware(ctx)
				if err != nil {
					return nil, err
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}

			return resp, nil
		}()

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			writeError(w, err)
		} else if resp != nil {
			ctx = xcontext.WithResponse(ctx, resp)
			writeJson(ctx, w, resp)
		}

		for _, closer := range r.closers {
			closer(ctx)
		}
	}
}
