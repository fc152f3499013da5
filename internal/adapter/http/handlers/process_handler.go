package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "controlimport/internal/adapter/http/dto/request"
	response "controlimport/internal/adapter/http/dto/response"
	"controlimport/internal/usecase"
	"controlimport/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProcessPayload = pkg.NewDomainErrorSimple("INVALID_PROCESS_INPUT", "Invalid process payload", http.StatusBadRequest)
	errInvalidStagePayload   = pkg.NewDomainErrorSimple("INVALID_STAGE_INPUT", "Invalid stage payload", http.StatusBadRequest)
)

// ProcessHandler handles HTTP requests for import processes.
type ProcessHandler struct {
	usecase usecase.IProcessUseCase
}

func NewProcessHandler(uc usecase.IProcessUseCase) *ProcessHandler {
	return &ProcessHandler{usecase: uc}
}

// CreateProcess opens a new import process, allocating (or honoring) its
// import-code sequence.
func (h *ProcessHandler) CreateProcess(c *gin.Context) {
	var payload request.CreateProcessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProcessPayload.HTTPStatus, errInvalidProcessPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidProcessPayload.HTTPStatus, errInvalidProcessPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapProcessError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProcess(p))
}

func (h *ProcessHandler) ListProcesses(c *gin.Context) {
	processes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProcessError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProcessList(processes))
}

func (h *ProcessHandler) GetProcess(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProcessError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProcess(p))
}

func (h *ProcessHandler) UpdateProcess(c *gin.Context) {
	var payload request.UpdateProcessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProcessPayload.HTTPStatus, errInvalidProcessPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapProcessError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProcess(p))
}

// UpdateStage edits one stage; currentStage only ever advances.
func (h *ProcessHandler) UpdateStage(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStagePayload.HTTPStatus, errInvalidStagePayload.ToHTTPError())
		return
	}

	p, err := h.usecase.UpdateStage(c.Request.Context(), c.Param("id"), c.Param("stage"), payload)
	if err != nil {
		appErr := mapProcessError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProcess(p))
}

func (h *ProcessHandler) VoidProcess(c *gin.Context) {
	p, err := h.usecase.Void(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProcessError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProcess(p))
}

func (h *ProcessHandler) DeleteProcess(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProcessError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Process deleted"})
}

func (h *ProcessHandler) DeleteItem(c *gin.Context) {
	p, err := h.usecase.DeleteItem(c.Request.Context(), c.Param("id"), c.Param("code"))
	if err != nil {
		appErr := mapProcessError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProcess(p))
}

// PreviewCode shows the code the next create would produce without drawing a
// sequence.
func (h *ProcessHandler) PreviewCode(c *gin.Context) {
	processType := c.Query("type")
	regime := c.Query("regime")
	if processType == "" || regime == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "type and regime are required", http.StatusBadRequest).ToHTTPError())
		return
	}

	extensions, _ := strconv.Atoi(c.DefaultQuery("ext", "0"))

	preview, err := h.usecase.PreviewCode(c.Request.Context(), processType, regime, extensions)
	if err != nil {
		appErr := mapProcessError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCodePreview(preview))
}

func mapProcessError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProcessID),
		errors.Is(err, usecase.ErrInvalidProcessType),
		errors.Is(err, usecase.ErrInvalidRegime),
		errors.Is(err, usecase.ErrInvalidStage),
		errors.Is(err, usecase.ErrInvalidItemCode),
		errors.Is(err, usecase.ErrProcessHasNoItems):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSequenceConflict):
		return pkg.NewDomainErrorSimple("SEQUENCE_ALREADY_EXISTS", "Import-code sequence already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrProcessNotFound):
		return pkg.NewDomainErrorSimple("PROCESS_NOT_FOUND", "Process not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCounterUninitialized):
		return pkg.NewDomainError("COUNTER_UNINITIALIZED", "Sequence counter not initialized", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
