package handler

import (
	"coach/config"

	"github.com/labstack/echo/v4"
)

// DaysQuery is the trailing window of the activity and brief routes.
type DaysQuery struct {
	Days int `query:"days" validate:"min=1,max=90"`
}

// bindDays reads ?days, defaulting to garmin.recentDays when absent.
func bindDays(c echo.Context, cfg *config.Config) (int, error) {
	query := DaysQuery{Days: cfg.Garmin.RecentDays}
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return 0, err
	}
	if err := c.Validate(&query); err != nil {
		return 0, err
	}

	return query.Days, nil
}
