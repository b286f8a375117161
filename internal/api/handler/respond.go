package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pjecz/hercules-api-key/internal/api/envelope"
	"github.com/pjecz/hercules-api-key/internal/api/metrics"
	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
)

// lookupMessages are the failure messages of a detail route.
type lookupMessages struct {
	missing  string
	disabled string
}

// paramMessage returns the client message of a parameter error.
func paramMessage(err error) (string, bool) {
	var pe *domain.ParamError
	if errors.As(err, &pe) {
		return pe.Message, true
	}
	return "", false
}

func countEnvelope(resource, result string) {
	metrics.EnvelopesTotal.WithLabelValues(resource, result).Inc()
}

func listResult(total int64) string {
	if total <= 0 {
		return "empty"
	}
	return "success"
}

// offsetList renders a limit/offset list. fetch parses its own filters; a
// *domain.ParamError from it becomes a failure envelope, anything else goes
// to the error handler.
func offsetList[T any](c echo.Context, resource string, fetch func(ctx context.Context, page ports.PageRequest) (ports.Page[T], error)) error {
	params, err := bindOffsetParams(c)
	if err == nil {
		var page ports.Page[T]
		page, err = fetch(c.Request().Context(), offsetRequest(params))
		if err == nil {
			countEnvelope(resource, listResult(page.Total))
			return c.JSON(http.StatusOK, envelope.NewOffsetPage(page.Items, page.Total, params))
		}
	}

	msg, ok := paramMessage(err)
	if !ok {
		return err
	}
	countEnvelope(resource, "invalid")
	return c.JSON(http.StatusOK, envelope.OffsetFailure[T](msg))
}

// sizedList renders a page/size list.
func sizedList[T any](c echo.Context, resource string, fetch func(ctx context.Context, page ports.PageRequest) (ports.Page[T], error)) error {
	params, err := bindSizeParams(c)
	if err == nil {
		var page ports.Page[T]
		page, err = fetch(c.Request().Context(), sizeRequest(params))
		if err == nil {
			countEnvelope(resource, listResult(page.Total))
			return c.JSON(http.StatusOK, envelope.NewSizedPage(page.Items, page.Total, params))
		}
	}

	msg, ok := paramMessage(err)
	if !ok {
		return err
	}
	countEnvelope(resource, "invalid")
	return c.JSON(http.StatusOK, envelope.SizedFailure[T](msg))
}

// detail renders a single record lookup.
func detail[T any](c echo.Context, resource string, msgs lookupMessages, fetch func(ctx context.Context) (domain.Lookup[T], error)) error {
	lookup, err := fetch(c.Request().Context())
	if err != nil {
		msg, ok := paramMessage(err)
		if !ok {
			return err
		}
		countEnvelope(resource, "invalid")
		return c.JSON(http.StatusOK, envelope.OneFailure[T](msg))
	}

	switch lookup.State {
	case domain.Found:
		countEnvelope(resource, "success")
		return c.JSON(http.StatusOK, envelope.Found(lookup.Value))
	case domain.Inactive:
		countEnvelope(resource, lookup.State.String())
		return c.JSON(http.StatusOK, envelope.OneFailure[T](msgs.disabled))
	default:
		countEnvelope(resource, lookup.State.String())
		return c.JSON(http.StatusOK, envelope.OneFailure[T](msgs.missing))
	}
}
