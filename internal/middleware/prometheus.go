package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/biskitsx/ZideQuest-Backend/internal/common"
	"github.com/biskitsx/ZideQuest-Backend/pkg/router"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

func WithStartTime() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		return xcontext.WithStartTime(ctx, time.Now()), nil
	}
}

func Prometheus() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		code := router.StatusCode(xcontext.Error(ctx))
		labels := []string{req.Method, fmt.Sprint(code)}

		common.PromCounters[common.HTTPRequestTotal].WithLabelValues(labels...).Inc()
		common.PromHistograms[common.HTTPRequestDurationSeconds].
			WithLabelValues(labels...).
			Observe(time.Since(xcontext.StartTime(ctx)).Seconds())
	}
}
