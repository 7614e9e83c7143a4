package api

import (
	"net/http"

	"flashsale-scheduler/internal/domain/schedule"
	"flashsale-scheduler/internal/handler/httperr"
	"flashsale-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var (
	errUnauthenticated     = errs.New("unauthenticated request")
	errUnknownNotification = errs.New("notification not found")
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// first match wins
var errorMappings = []errorMapping{
	{errs.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{errs.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{errs.ErrScheduleNotFound, http.StatusNotFound, "Schedule not found"},
	{errs.ErrMarketplaceNotConnected, http.StatusConflict, "Marketplace account not connected"},
	{errs.ErrToggleInProgress, http.StatusConflict, "Status change already in progress"},
	{errs.ErrMarketplaceFailure, http.StatusBadGateway, "Marketplace request failed"},
	{errs.ErrEmptyGoal, http.StatusBadRequest, "Goal is required"},
	{schedule.ErrInvalidWindow, http.StatusBadRequest, "End time must not be before start time"},
	{schedule.ErrPercentageOutOfRange, http.StatusBadRequest, "Percentage must be between 0 and 100"},
	{schedule.ErrNegativeValue, http.StatusBadRequest, "Value must not be negative"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid schedule"},
}

func abortWithUseCaseError(c *gin.Context, err error, fallback string) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}
