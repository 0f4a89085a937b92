// Package v1handler implements the v1 HTTP API of the suggestion service.
package v1handler

import (
	"context"
	"net/http"

	"domainsuggest/internal/suggester"
	"domainsuggest/pkg/domain"
	"domainsuggest/pkg/logger"
	"domainsuggest/pkg/serrors"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Deps are the collaborators of Handler.
type Deps struct {
	Suggester suggester.Suggester
	// Meter records the API metrics; nil disables them.
	Meter metric.Meter
}

type Handler struct {
	deps    Deps
	metrics *Metrics
}

func New(deps Deps) *Handler {
	return &Handler{
		deps:    deps,
		metrics: NewMetrics(deps.Meter),
	}
}

// Error is the body of every error response.
type Error struct {
	Code    string
	Message string
	// Example shows a valid request body. Only set for suggestion input errors.
	Example *domain.Applicant
}

// ErrorStatusCode pairs an Error with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

type kindResponse struct {
	status  int
	message string
}

// kindResponses holds the status of each semantic kind and the message used
// when the error carries none.
var kindResponses = map[serrors.Kind]kindResponse{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
}

// NewError converts err into an error response. Semantic errors keep their
// message; anything else is logged and reported as an internal error.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	if res, ok := kindResponses[kind]; ok && kind != nil {
		msg := serrors.MessageOf(err)
		if msg == "" {
			msg = res.message
		}
		logger.Debug(ctx, "request failed", zap.String("code", kind.Error()), zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: res.status,
			Response: Error{
				Code:    kind.Error(),
				Message: msg,
			},
		}
	}

	logger.Error(ctx, "internal error", zap.Error(err))

	return &ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response: Error{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal error",
		},
	}
}
