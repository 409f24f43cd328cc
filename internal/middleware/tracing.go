package middleware

import (
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/server"
)

// TracingMiddleware owns the New Relic Echo middleware. With a nil
// application every method returns a pass-through.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware starts a transaction per request so that
// newrelic.FromContext works further down the chain.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing tags the transaction with the matched route and request id,
// then with the outcome of the request. Rejected requests carry the error
// code and, for validation failures, how many fields failed and where.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			for key, value := range requestAttributes(c) {
				txn.AddAttribute(key, value)
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			for key, value := range outcomeAttributes(c, err) {
				txn.AddAttribute(key, value)
			}

			return err
		}
	}
}

func requestAttributes(c echo.Context) map[string]any {
	attrs := map[string]any{
		"http.route":      c.Request().Method + " " + c.Path(),
		"http.real_ip":    c.RealIP(),
		"http.user_agent": c.Request().UserAgent(),
	}
	if requestID := GetRequestID(c); requestID != "" {
		attrs["request.id"] = requestID
	}
	return attrs
}

func outcomeAttributes(c echo.Context, err error) map[string]any {
	attrs := map[string]any{
		"http.status_code": statusOf(err, c.Response().Status),
	}

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		return attrs
	}

	attrs["error.code"] = httpErr.Code
	if len(httpErr.Errors) == 0 {
		return attrs
	}

	var locations []string
	for _, fieldErr := range httpErr.Errors {
		if !slices.Contains(locations, fieldErr.Location) {
			locations = append(locations, fieldErr.Location)
		}
	}
	slices.Sort(locations)

	attrs["validation.field_count"] = len(httpErr.Errors)
	attrs["validation.locations"] = strings.Join(locations, ",")
	return attrs
}
