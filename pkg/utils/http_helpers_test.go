package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "fiber-service/pkg/errors"
)

func TestParseFilterFromQuery(t *testing.T) {
	values := url.Values{
		"search":         {"os1a"},
		"filter[status]": {"SCHEDULED,IN_FIELD"},
		"filter[region]": {"Centro"},
		"sort[date]":     {"DESC"},
		"sort[bogus]":    {"sideways"},
		"limit":          {"1000"},
		"page":           {"3"},
		"withPagination": {"true"},
	}

	f := ParseFilterFromQuery(values)

	assert.Equal(t, "os1a", f.Search)
	assert.Equal(t, MaxLimit, f.Limit)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 2*MaxLimit, f.Offset)
	assert.True(t, f.WithPagination)
	assert.Equal(t, map[string]string{"date": "desc"}, f.Sort)
	assert.Equal(t, []string{"SCHEDULED", "IN_FIELD"}, FilterValues(f, "status"))
	assert.Equal(t, []string{"Centro"}, FilterValues(f, "region"))
	assert.Nil(t, FilterValues(f, "priority"))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	f := ParseFilterFromQuery(url.Values{"limit": {"2"}, "page": {"2"}, "withPagination": {"true"}})
	assert.Equal(t, []int{3, 4}, Paginate(items, f))

	f.Offset = 10
	assert.Empty(t, Paginate(items, f))

	f.WithPagination = false
	assert.Equal(t, items, Paginate(items, f))
}

func TestErrorResponse_MapsSentinels(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("find: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{apperrors.ErrConflict, http.StatusConflict},
		{apperrors.NewInvalidInputError("descrição obrigatória"), http.StatusBadRequest},
		{fmt.Errorf("create: %w", apperrors.ErrEmptyCatalog), http.StatusBadRequest},
		{apperrors.NewHttpError(http.StatusTeapot, "teapot", nil, nil), http.StatusTeapot},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, ErrorResponse(ctx, tc.err, zap.NewNop()))
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
		assert.Contains(t, rec.Body.String(), `"status":false`)
	}
}

func TestSuccessResponse_WithPagination(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?withPagination=true&limit=2", nil)
	ctx := e.NewContext(req, rec)

	require.NoError(t, SuccessResponse(ctx, []int{1, 2}, "ok", http.StatusOK, 5))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_pages":3`)
	assert.Contains(t, rec.Body.String(), `"total_count":5`)
}

func TestErrorResponse_FallsBackToRequestLogger(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set("logger", zap.NewNop())

	require.NoError(t, ErrorResponse(c, errors.New("boom"), nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, ErrorResponse(c, fmt.Errorf("заказ: %w", apperrors.ErrNotFound), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
