package routes

import (
	"emrappt/cmd/internal/service"
	"emrappt/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
	"net/http"
)

type DashboardService interface {
	GetDoctors() ([]string, apierror.ErrorResponse)
	GetStats() (*service.StatsResponse, apierror.ErrorResponse)
}

type DefaultDashboardRoute struct {
	DashboardService DashboardService
}

func NewDashboardDefault(dashService DashboardService) *DefaultDashboardRoute {
	return &DefaultDashboardRoute{DashboardService: dashService}
}

func (d *DefaultDashboardRoute) GetDoctors(c echo.Context) error {
	doctors, apierr := d.DashboardService.GetDoctors()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "data": doctors}
	return c.JSON(http.StatusOK, &resp)
}

func (d *DefaultDashboardRoute) GetStats(c echo.Context) error {
	stats, apierr := d.DashboardService.GetStats()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "data": stats}
	return c.JSON(http.StatusOK, &resp)
}

func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "healthy", "service": "EMR API"})
}
