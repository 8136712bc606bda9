package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "oscell/internal/adapter/http/dto/request"
	response "oscell/internal/adapter/http/dto/response"
	"oscell/internal/adapter/http/middleware"
	"oscell/internal/domain/entities"
	"oscell/internal/usecase"
	"oscell/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidServiceRecordPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_RECORD_INPUT", "Invalid service record payload", http.StatusBadRequest)
	errInvalidServiceAmountPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_AMOUNT", "Amounts must be non-negative numbers", http.StatusBadRequest)
)

// ServiceRecordHandler exposes the authenticated subject's service ledger.
type ServiceRecordHandler struct {
	usecase usecase.IServiceLedgerUseCase
}

func NewServiceRecordHandler(uc usecase.IServiceLedgerUseCase) *ServiceRecordHandler {
	return &ServiceRecordHandler{usecase: uc}
}

// ListServiceRecords godoc
// @Summary      List service records, newest date first
// @Tags         services
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.ServiceRecordResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /services [get]
func (h *ServiceRecordHandler) ListServiceRecords(c *gin.Context) {
	records, err := h.usecase.List(c.Request.Context(), c.GetString(middleware.SubjectKey))
	if err != nil {
		appErr := mapServiceRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRecords(records))
}

// CreateServiceRecord godoc
// @Summary      Add a completed repair to the ledger
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.ServiceRecordRequest  true  "Service record"
// @Success      201   {object}  response.ServiceRecordResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /services [post]
func (h *ServiceRecordHandler) CreateServiceRecord(c *gin.Context) {
	fields, ok := h.bindFields(c)
	if !ok {
		return
	}

	record, err := h.usecase.Create(c.Request.Context(), c.GetString(middleware.SubjectKey), fields)
	if err != nil {
		appErr := mapServiceRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceRecord(record))
}

// GetServiceRecord godoc
// @Summary      Get one service record
// @Tags         services
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  response.ServiceRecordResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id} [get]
func (h *ServiceRecordHandler) GetServiceRecord(c *gin.Context) {
	record, err := h.usecase.Get(c.Request.Context(), c.GetString(middleware.SubjectKey), c.Param("id"))
	if err != nil {
		appErr := mapServiceRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRecord(record))
}

// UpdateServiceRecord godoc
// @Summary      Replace the editable fields of a service record
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                        true  "Record id"
// @Param        body  body      request.ServiceRecordRequest  true  "Service record"
// @Success      200   {object}  response.ServiceRecordResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /services/{id} [put]
func (h *ServiceRecordHandler) UpdateServiceRecord(c *gin.Context) {
	fields, ok := h.bindFields(c)
	if !ok {
		return
	}

	record, err := h.usecase.Update(c.Request.Context(), c.GetString(middleware.SubjectKey), c.Param("id"), fields)
	if err != nil {
		appErr := mapServiceRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRecord(record))
}

// DeleteServiceRecord godoc
// @Summary      Delete a service record
// @Description  Requires confirm=true; without it nothing is deleted.
// @Tags         services
// @Security     Bearer
// @Param        id       path   string  true  "Record id"
// @Param        confirm  query  bool    true  "Explicit confirmation"
// @Success      204
// @Failure      428  {object}  pkg.HTTPError
// @Router       /services/{id} [delete]
func (h *ServiceRecordHandler) DeleteServiceRecord(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	err := h.usecase.Delete(c.Request.Context(), c.GetString(middleware.SubjectKey), c.Param("id"), confirmed)
	if err != nil {
		appErr := mapServiceRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ResolveDateShortcut godoc
// @Summary      Resolve a quick-date button (today, yesterday)
// @Tags         services
// @Produce      json
// @Param        shortcut  path      string  true  "today or yesterday"
// @Success      200       {object}  response.DateShortcutResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /services/dates/{shortcut} [get]
func (h *ServiceRecordHandler) ResolveDateShortcut(c *gin.Context) {
	shortcut := c.Param("shortcut")
	date, err := h.usecase.DateShortcut(shortcut)
	if err != nil {
		appErr := mapServiceRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DateShortcutResponse{Shortcut: shortcut, Date: date})
}

func (h *ServiceRecordHandler) bindFields(c *gin.Context) (entities.ServiceRecordFields, bool) {
	var payload request.ServiceRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceRecordPayload.HTTPStatus, errInvalidServiceRecordPayload.ToHTTPError())
		return entities.ServiceRecordFields{}, false
	}

	if payload.NeedsDateShortcut() {
		date, err := h.usecase.DateShortcut(payload.DateShortcut)
		if err != nil {
			appErr := mapServiceRecordError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return entities.ServiceRecordFields{}, false
		}
		payload.Date = date
	}

	fields, err := payload.ToFields()
	if err != nil {
		c.JSON(errInvalidServiceAmountPayload.HTTPStatus, errInvalidServiceAmountPayload.ToHTTPError())
		return entities.ServiceRecordFields{}, false
	}
	return fields, true
}

func mapServiceRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubject), errors.Is(err, usecase.ErrInvalidServiceRecordID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceDate):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_DATE", "Date must be YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceAmount):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_AMOUNT", "Amounts must be non-negative numbers", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceFieldRequired):
		return pkg.NewDomainErrorSimple("SERVICE_FIELD_REQUIRED", "Date, client, device and service type are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownDateShortcut):
		return pkg.NewDomainErrorSimple("UNKNOWN_DATE_SHORTCUT", "Date shortcut must be today or yesterday", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceRecordNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_RECORD_NOT_FOUND", "Service record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeleteNotConfirmed):
		return pkg.NewDomainErrorSimple("DELETE_NOT_CONFIRMED", "Deletion must be confirmed", http.StatusPreconditionRequired)
	case errors.Is(err, usecase.ErrStorage):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage is unavailable, try again", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
