package http

import (
	"net/http"
	"strconv"

	"github.com/itsSauraj/recipe-api/internal/common/constants"
)

type PageParams struct {
	Page  int
	Limit int
}

// ParsePageParams reads ?page= and ?limit=, falling back to defaults on
// missing or unparseable values and clamping limit to the configured maximum.
func ParsePageParams(r *http.Request) PageParams {
	p := PageParams{
		Page:  constants.DefaultPage,
		Limit: constants.DefaultPageLimit,
	}

	if v := r.URL.Query().Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 0 {
			p.Page = page
		}
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			if limit > constants.MaxPageLimit {
				limit = constants.MaxPageLimit
			}
			p.Limit = limit
		}
	}

	return p
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
