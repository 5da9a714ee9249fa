package catalog

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/showscope/showscope/pkg/errcodes"
	"github.com/showscope/showscope/pkg/omdb"
)

// ExcludedHeader carries the number of hits excluded by failed detail
// fetches. The body stays a plain array, so the count rides along as a
// header for clients that care.
const ExcludedHeader = "X-Search-Excluded"

type handler struct {
	catalogService *Service
}

func (h *handler) search(c echo.Context) error {
	ctx := c.Request().Context()

	params := SearchShowsQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.catalogService.Search(ctx, params.Query)
	if err != nil {
		return mapUpstreamError(err, "Series")
	}

	c.Response().Header().Set(ExcludedHeader, strconv.Itoa(result.Excluded))
	return errors.WithStack(c.JSON(http.StatusOK, result.Shows))
}

func (h *handler) details(c echo.Context) error {
	ctx := c.Request().Context()

	params := ShowDetailsQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	show, err := h.catalogService.Details(ctx, params.ID)
	if err != nil {
		return mapUpstreamError(err, "Show")
	}

	return errors.WithStack(c.JSON(http.StatusOK, show))
}

// mapUpstreamError translates service errors into the error codes the API
// promises: 400 for validation, 404 for an upstream not-found, 504 for a
// timeout, and 500 for everything else.
func mapUpstreamError(err error, resource string) error {
	switch {
	case errors.Is(err, ErrEmptyQuery):
		return errcodes.ValidationError(`"query" is required`)
	case errors.Is(err, ErrEmptyID):
		return errcodes.ValidationError(`"id" is required`)
	case errors.Is(err, omdb.ErrNotFound):
		return errcodes.NotFound(resource)
	case errors.Is(err, omdb.ErrTimeout):
		return errcodes.UpstreamTimeout()
	}
	return errors.WithStack(err)
}
