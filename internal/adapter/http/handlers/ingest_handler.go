package handlers

import (
	"errors"
	"net/http"

	request "controlimport/internal/adapter/http/dto/request"
	response "controlimport/internal/adapter/http/dto/response"
	"controlimport/internal/usecase"
	"controlimport/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidIngestPayload = pkg.NewDomainErrorSimple("INVALID_INGEST_INPUT", "Invalid ingest payload", http.StatusBadRequest)

// IngestHandler handles bulk process creation from pre-parsed spreadsheet rows.
type IngestHandler struct {
	usecase usecase.IIngestUseCase
}

func NewIngestHandler(uc usecase.IIngestUseCase) *IngestHandler {
	return &IngestHandler{usecase: uc}
}

// IngestRows validates and persists a batch of rows. The batch is atomic on
// validation: one bad row rejects the whole upload.
func (h *IngestHandler) IngestRows(c *gin.Context) {
	var payload request.IngestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIngestPayload.HTTPStatus, errInvalidIngestPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.IngestRows(c.Request.Context(), payload.Rows)
	if err != nil {
		appErr := mapIngestError(err, result)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromIngestResult(result))
}

func mapIngestError(err error, result usecase.IngestResult) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrIngestNoRows):
		return pkg.NewDomainErrorSimple("INGEST_EMPTY", "No rows to ingest", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIngestValidation):
		message := "Rows failed validation"
		if len(result.Errors) > 0 {
			message = result.Errors[0]
		}
		return pkg.NewDomainErrorSimple("INGEST_VALIDATION_FAILED", message, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
