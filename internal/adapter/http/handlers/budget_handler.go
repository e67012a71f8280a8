package handlers

import (
	"errors"
	"io"
	"net/http"

	request "orcafacil/internal/adapter/http/dto/request"
	response "orcafacil/internal/adapter/http/dto/response"
	"orcafacil/internal/domain/entities"
	"orcafacil/internal/render"
	"orcafacil/internal/usecase"
	"orcafacil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
	errInvalidPreviewImage  = pkg.NewDomainErrorSimple("INVALID_PREVIEW_IMAGE", "Preview image must be a PNG body", http.StatusBadRequest)
	errPreviewTooLarge      = pkg.NewDomainErrorSimple("PREVIEW_TOO_LARGE", "Preview image exceeds the size limit", http.StatusRequestEntityTooLarge)
)

// Preview uploads above this size are rejected outright.
const maxPreviewBytes = 20 << 20

// BudgetHandler handles HTTP requests for budget documents.
type BudgetHandler struct {
	usecase  usecase.IBudgetUseCase
	renderer render.Renderer
}

func NewBudgetHandler(uc usecase.IBudgetUseCase, renderer render.Renderer) *BudgetHandler {
	return &BudgetHandler{usecase: uc, renderer: renderer}
}

// ListBudgets returns every stored budget, in storage order.
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	b, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToDraft())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// AttachPDF accepts the rasterized preview surface as a raw PNG body, tiles
// it into an A4 PDF, stores it and binds the reference to the budget.
func (h *BudgetHandler) AttachPDF(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPreviewBytes+1))
	if err != nil || len(body) == 0 {
		c.JSON(errInvalidPreviewImage.HTTPStatus, errInvalidPreviewImage.ToHTTPError())
		return
	}
	if len(body) > maxPreviewBytes {
		c.JSON(errPreviewTooLarge.HTTPStatus, errPreviewTooLarge.ToHTTPError())
		return
	}

	b, err := h.usecase.AttachPDF(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// DownloadPDF redirects to a short-lived retrieval URL for the stored PDF.
func (h *BudgetHandler) DownloadPDF(c *gin.Context) {
	url, err := h.usecase.DownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Redirect(http.StatusSeeOther, url)
}

// Preview renders the budget's HTML preview surface, the same surface the
// editor rasterizes before posting it to AttachPDF. A template query param
// overrides the stored tag so the editor can flip styles without saving.
func (h *BudgetHandler) Preview(c *gin.Context) {
	b, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if tag := entities.BudgetTemplate(c.Query("template")); tag.IsValid() {
		b.Template = tag
	}

	html, err := h.renderer.RenderHTML(render.FromBudget(b))
	if err != nil {
		appErr := pkg.NewDomainError("PREVIEW_RENDER_FAILED", "Could not render preview", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidTemplate),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetHasNoPDF):
		return pkg.NewDomainErrorSimple("PDF_NOT_FOUND", "Budget has no stored PDF", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPDFRender):
		return pkg.NewDomainError("PDF_RENDER_FAILED", "Could not assemble the PDF", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPDFUpload):
		return pkg.NewDomainError("PDF_UPLOAD_FAILED", "Could not store the PDF", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrBudgetPersist):
		return pkg.NewDomainError("BUDGET_PERSIST_FAILED", "Could not persist the budget", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
