package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"controlimport/internal/adapter/http/handlers/mocks"
	"controlimport/internal/domain/entities"
	"controlimport/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProcessHandler_CreateProcess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessUseCase(ctrl)
		h := NewProcessHandler(uc)

		r := gin.New()
		r.POST("/v1/imports", h.CreateProcess)

		req := httptest.NewRequest(http.MethodPost, "/v1/imports", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessUseCase(ctrl)
		h := NewProcessHandler(uc)

		r := gin.New()
		r.POST("/v1/imports", h.CreateProcess)

		req := httptest.NewRequest(http.MethodPost, "/v1/imports", bytes.NewBufferString(`{"type":"IMP"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Process{
			ID:         "p-1",
			ImportCode: "IMP-10-2024-008",
			Status:     entities.StatusPendingOriginDispatch,
		}, nil)
		h := NewProcessHandler(uc)

		r := gin.New()
		r.POST("/v1/imports", h.CreateProcess)

		body := `{"type":"IMP","regime":"10","supplier":"ACME","invoice_date":"2024-03-01"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/imports", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["import_code"] != "IMP-10-2024-008" {
			t.Fatalf("unexpected body %v", resp)
		}
	})

	t.Run("sequence conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Process{}, usecase.ErrSequenceConflict)
		h := NewProcessHandler(uc)

		r := gin.New()
		r.POST("/v1/imports", h.CreateProcess)

		body := `{"type":"IMP","regime":"10","import_code":"IMP-10-2024-009"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/imports", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestProcessHandler_GetProcess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Process{ID: "p-1"}, nil)
		h := NewProcessHandler(uc)

		r := gin.New()
		r.GET("/v1/imports/:id", h.GetProcess)

		req := httptest.NewRequest(http.MethodGet, "/v1/imports/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "zz").Return(entities.Process{}, usecase.ErrProcessNotFound)
		h := NewProcessHandler(uc)

		r := gin.New()
		r.GET("/v1/imports/:id", h.GetProcess)

		req := httptest.NewRequest(http.MethodGet, "/v1/imports/zz", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProcessHandler_UpdateStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid stage maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessUseCase(ctrl)
		uc.EXPECT().UpdateStage(gomock.Any(), "p-1", "warehouse", gomock.Any()).
			Return(entities.Process{}, usecase.ErrInvalidStage)
		h := NewProcessHandler(uc)

		r := gin.New()
		r.PATCH("/v1/imports/:id/stage/:stage", h.UpdateStage)

		req := httptest.NewRequest(http.MethodPatch, "/v1/imports/p-1/stage/warehouse", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessUseCase(ctrl)
		uc.EXPECT().UpdateStage(gomock.Any(), "p-1", "customs", gomock.Any()).
			Return(entities.Process{ID: "p-1", CurrentStage: entities.StageCustoms}, nil)
		h := NewProcessHandler(uc)

		r := gin.New()
		r.PATCH("/v1/imports/:id/stage/:stage", h.UpdateStage)

		body := `{"release_code":"R-1"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/imports/p-1/stage/customs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProcessHandler_VoidProcess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProcessUseCase(ctrl)
	uc.EXPECT().Void(gomock.Any(), "p-1").Return(entities.Process{ID: "p-1", Voided: true, Status: entities.StatusVoided}, nil)
	h := NewProcessHandler(uc)

	r := gin.New()
	r.PATCH("/v1/imports/:id/void", h.VoidProcess)

	req := httptest.NewRequest(http.MethodPatch, "/v1/imports/p-1/void", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestProcessHandler_DeleteItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown item maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessUseCase(ctrl)
		uc.EXPECT().DeleteItem(gomock.Any(), "p-1", "ITM-9").Return(entities.Process{}, usecase.ErrItemNotFound)
		h := NewProcessHandler(uc)

		r := gin.New()
		r.DELETE("/v1/imports/:id/items/:code", h.DeleteItem)

		req := httptest.NewRequest(http.MethodDelete, "/v1/imports/p-1/items/ITM-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProcessHandler_PreviewCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing query params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessUseCase(ctrl)
		h := NewProcessHandler(uc)

		r := gin.New()
		r.GET("/v1/imports/code-preview", h.PreviewCode)

		req := httptest.NewRequest(http.MethodGet, "/v1/imports/code-preview?type=IMP", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("preview", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessUseCase(ctrl)
		uc.EXPECT().PreviewCode(gomock.Any(), "IMP", "10", 1).
			Return(usecase.CodePreview{Base: "IMP-10-2024-042", Full: "IMP-10-2024-042-001"}, nil)
		h := NewProcessHandler(uc)

		r := gin.New()
		r.GET("/v1/imports/code-preview", h.PreviewCode)

		req := httptest.NewRequest(http.MethodGet, "/v1/imports/code-preview?type=IMP&regime=10&ext=1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code_full"] != "IMP-10-2024-042-001" {
			t.Fatalf("unexpected body %v", resp)
		}
	})
}
