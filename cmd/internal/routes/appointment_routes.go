package routes

import (
	"emrappt/cmd/internal/service"
	"emrappt/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
	"net/http"
	"strconv"
)

type AppointmentService interface {
	GetAppointments(filter *service.AppointmentFilter) ([]*service.AppointmentResponse, apierror.ErrorResponse)
	CreateAppointment(req *service.CreateAppointmentRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	UpdateStatus(id int, req *service.UpdateStatusRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	DeleteAppointment(id int) apierror.ErrorResponse
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

func (a *DefaultAppointmentRoute) GetAppointments(c echo.Context) error {
	var filter service.AppointmentFilter
	if err := c.Bind(&filter); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appts, apierr := a.AppointmentService.GetAppointments(&filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "data": appts, "count": len(appts)}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) CreateAppointment(c echo.Context) error {
	var req service.CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.CreateAppointment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "data": appt}
	return c.JSON(http.StatusCreated, &resp)
}

func (a *DefaultAppointmentRoute) UpdateAppointment(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.UpdateStatus(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "data": appt}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) DeleteAppointment(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	serr := a.AppointmentService.DeleteAppointment(id)
	if serr != nil {
		return c.JSON(serr.Code(), serr)
	}

	resp := echo.Map{"success": true, "message": "Deleted"}
	return c.JSON(http.StatusOK, &resp)
}

func parseID(c echo.Context) (int, apierror.ErrorResponse) {
	param := c.Param("id")
	if param == "" {
		return 0, apierror.NewMissingParamError("id")
	}
	id, err := strconv.Atoi(param)
	if err != nil {
		return 0, apierror.NewInvalidParamTypeError("id", "int")
	}
	return id, nil
}
