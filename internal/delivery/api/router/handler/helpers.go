package handler

import (
	"strconv"

	"rewards/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// pageQuery reads ?page&limit; page is 1-based.
func pageQuery(c echo.Context) (page, limit int, window repository.Page) {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	limit = min(limit, maxPageLimit)

	return page, limit, repository.Page{Offset: (page - 1) * limit, Limit: limit}
}

func uuidParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}
