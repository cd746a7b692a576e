package rest

import (
	"net/http"
	"strconv"

	"toolbox/di"
	"toolbox/domain"

	"github.com/labstack/echo/v4"
)

type trendEntryResponse struct {
	PackageID string `json:"package_id"`
	Position  int    `json:"position"`
}

type trendsResponse struct {
	Date    string               `json:"date"`
	Entries []trendEntryResponse `json:"entries"`
}

func fetchTrendsHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawDate := c.Param("date")
		date, err := domain.ParseDate(rawDate)
		if err != nil {
			return handleValidationError(c, "date must be formatted as YYYY-MM-DD", "date", rawDate)
		}

		limit := 0
		if rawLimit := c.QueryParam("limit"); rawLimit != "" {
			limit, err = strconv.Atoi(rawLimit)
			if err != nil || limit < 1 {
				return handleValidationError(c, "limit must be a positive integer", "limit", rawLimit)
			}
		}

		entries, err := container.FetchTrendsUsecase.Execute(c.Request().Context(), date, limit)
		if err != nil {
			return handleError(c, err, "fetchTrends")
		}

		response := trendsResponse{
			Date:    domain.FormatDate(date),
			Entries: make([]trendEntryResponse, 0, len(entries)),
		}
		for _, entry := range entries {
			response.Entries = append(response.Entries, trendEntryResponse{
				PackageID: entry.PackageID,
				Position:  entry.Position,
			})
		}

		return c.JSON(http.StatusOK, response)
	}
}
