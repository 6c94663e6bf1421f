package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/bintangpramudya/kasirpay-backend/pkg/errors"
	"github.com/bintangpramudya/kasirpay-backend/pkg/pagination"
	"github.com/google/uuid"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

func ParseQueryBool(r *http.Request, key string, defaultVal bool) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be boolean").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// ParsePaginationParams extracts the shared list knobs from the query string.
func ParsePaginationParams(r *http.Request) (pagination.Params, error) {
	page, err := ParseQueryInt(r, "page", pagination.DefaultPage, 1, 1_000_000)
	if err != nil {
		return pagination.Params{}, err
	}
	// perPage is the documented knob; pageSize is accepted as an alias.
	perPageKey := "perPage"
	if strings.TrimSpace(r.URL.Query().Get(perPageKey)) == "" {
		if strings.TrimSpace(r.URL.Query().Get("pageSize")) != "" {
			perPageKey = "pageSize"
		}
	}
	perPage, err := ParseQueryInt(r, perPageKey, pagination.DefaultPerPage, 1, pagination.MaxPerPage)
	if err != nil {
		return pagination.Params{}, err
	}
	all, err := ParseQueryBool(r, "all", false)
	if err != nil {
		return pagination.Params{}, err
	}

	query := r.URL.Query()
	params := pagination.Params{
		Page:      page,
		PerPage:   perPage,
		SortBy:    strings.TrimSpace(query.Get("sortBy")),
		SortOrder: query.Get("sortOrder"),
		Search:    query.Get("search"),
		All:       all,
	}
	return params.Normalize(), nil
}

// ParsePathUUID validates a chi URL parameter as a UUID.
func ParsePathUUID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "path parameter must be a valid uuid").WithDetails(map[string]any{"field": field})
	}
	return id, nil
}
