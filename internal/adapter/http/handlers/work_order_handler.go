package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	request "oscell/internal/adapter/http/dto/request"
	response "oscell/internal/adapter/http/dto/response"
	"oscell/internal/usecase"
	"oscell/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderWorkOrderNumber     = "X-Work-Order-Number"
	HeaderNextWorkOrderNumber = "X-Next-Work-Order-Number"
	HeaderDocumentPages       = "X-Document-Pages"
)

var (
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)
	errInvalidCommitPayload    = pkg.NewDomainErrorSimple("INVALID_COMMIT_INPUT", "used_number is required", http.StatusBadRequest)
)

// WorkOrderHandler serves the work order form: number allocation, preview
// and the two emission paths (print and PDF download).
type WorkOrderHandler struct {
	allocator  usecase.ISequenceAllocatorUseCase
	workOrders usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(allocator usecase.ISequenceAllocatorUseCase, workOrders usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{allocator: allocator, workOrders: workOrders}
}

// NextNumber godoc
// @Summary      Suggest the next work order number
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  response.NextNumberResponse
// @Failure      503  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Router       /work-orders/next-number [get]
func (h *WorkOrderHandler) NextNumber(c *gin.Context) {
	n, err := h.allocator.SuggestNextNumber(c.Request.Context())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NextNumberResponse{NextNumber: n})
}

// Counter godoc
// @Summary      Show the stored work order counter
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  response.CounterResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /work-orders/counter [get]
func (h *WorkOrderHandler) Counter(c *gin.Context) {
	counter, err := h.allocator.Current(c.Request.Context())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCounter(counter))
}

// Commit godoc
// @Summary      Record a work order number as used
// @Description  Advance-if-greater: committing a number at or below the stored one is a no-op.
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      request.CommitWorkOrderRequest  true  "Used number"
// @Success      200   {object}  response.CounterResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Router       /work-orders/commit [post]
func (h *WorkOrderHandler) Commit(c *gin.Context) {
	var payload request.CommitWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCommitPayload.HTTPStatus, errInvalidCommitPayload.ToHTTPError())
		return
	}

	counter, err := h.allocator.Commit(c.Request.Context(), payload.UsedNumber.String())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCounter(counter))
}

// NewDraft godoc
// @Summary      Blank work order form with the suggested number
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  response.WorkOrderDraftResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /work-orders/draft [get]
func (h *WorkOrderHandler) NewDraft(c *gin.Context) {
	draft, err := h.workOrders.NewDraft(c.Request.Context())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderDraft(draft))
}

// Preview godoc
// @Summary      Render the print page without emitting it
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      html
// @Param        body  body  request.WorkOrderDraftRequest  true  "Work order form"
// @Success      200
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Router       /work-orders/preview [post]
func (h *WorkOrderHandler) Preview(c *gin.Context) {
	var payload request.WorkOrderDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	var buf bytes.Buffer
	if err := h.workOrders.RenderPreview(c.Request.Context(), payload.ToEntity(), &buf); err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, usecase.ContentTypeHTML, buf.Bytes())
}

// Print godoc
// @Summary      Emit the work order as a printable page
// @Description  The number is committed only when the page was produced. Clients that do not accept HTML get 406 and nothing is committed.
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      html
// @Param        body  body  request.WorkOrderDraftRequest  true  "Work order form"
// @Success      200
// @Failure      400  {object}  pkg.HTTPError
// @Failure      406  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Router       /work-orders/print [post]
func (h *WorkOrderHandler) Print(c *gin.Context) {
	var payload request.WorkOrderDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	surface := newBufferedSurface(c.NegotiateFormat(gin.MIMEHTML) != "")
	em, err := h.workOrders.EmitForPrint(c.Request.Context(), payload.ToEntity(), surface)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header(HeaderWorkOrderNumber, em.Number)
	c.Header(HeaderNextWorkOrderNumber, em.NextDraft.Number)
	c.Data(http.StatusOK, usecase.ContentTypeHTML, surface.Bytes())
}

// Download godoc
// @Summary      Emit the work order as a PDF download
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  request.WorkOrderDraftRequest  true  "Work order form"
// @Success      200
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Router       /work-orders/pdf [post]
func (h *WorkOrderHandler) Download(c *gin.Context) {
	var payload request.WorkOrderDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	em, err := h.workOrders.EmitForDownload(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", em.Filename))
	c.Header(HeaderWorkOrderNumber, em.Number)
	c.Header(HeaderNextWorkOrderNumber, em.NextDraft.Number)
	c.Header(HeaderDocumentPages, strconv.Itoa(em.Pages))
	c.Data(http.StatusOK, em.ContentType, em.Content)
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderNumber):
		return pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_NUMBER", "Work order number must be a non-negative integer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceValue):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_VALUE", "Service value must be a non-negative amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWorkOrderDate):
		return pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_DATE", "Date must be YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPresentationBlocked):
		return pkg.NewDomainError("PRINT_SURFACE_BLOCKED", "Print page could not be opened", err, http.StatusNotAcceptable)
	case errors.Is(err, usecase.ErrRasterizerUnavailable):
		return pkg.NewDomainError("RASTERIZER_UNAVAILABLE", "PDF generation is unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrRenderFailed):
		return pkg.NewDomainError("RENDER_FAILED", "Work order could not be rendered", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrStorage):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage is unavailable, try again", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
