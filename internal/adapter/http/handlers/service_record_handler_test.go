package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oscell/internal/adapter/http/handlers/mocks"
	"oscell/internal/adapter/http/middleware"
	"oscell/internal/domain/entities"
	"oscell/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const testSubject = "subject-1"

func newServiceRecordRouter(t *testing.T) (*mocks.MockIServiceLedgerUseCase, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIServiceLedgerUseCase(ctrl)
	h := NewServiceRecordHandler(uc)

	r := gin.New()
	services := r.Group("/v1/services", func(c *gin.Context) {
		c.Set(middleware.SubjectKey, testSubject)
		c.Next()
	})
	services.GET("", h.ListServiceRecords)
	services.POST("", h.CreateServiceRecord)
	services.GET("/dates/:shortcut", h.ResolveDateShortcut)
	services.GET("/:id", h.GetServiceRecord)
	services.PUT("/:id", h.UpdateServiceRecord)
	services.DELETE("/:id", h.DeleteServiceRecord)
	return uc, r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleRecord() entities.ServiceRecord {
	return entities.ServiceRecord{
		ID:            "rec-1",
		Subject:       testSubject,
		Date:          "2026-10-19",
		ClientName:    "Ana",
		DeviceName:    "Moto G",
		ServiceType:   "Tela",
		PartsCost:     decimal.RequireFromString("120"),
		ChargedAmount: decimal.RequireFromString("350.5"),
		Profit:        decimal.RequireFromString("230.5"),
	}
}

func TestServiceRecordHandler_List(t *testing.T) {
	uc, r := newServiceRecordRouter(t)
	uc.EXPECT().List(gomock.Any(), testSubject).Return([]entities.ServiceRecord{sampleRecord()}, nil)

	w := serve(r, http.MethodGet, "/v1/services", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"profit":"230.50"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestServiceRecordHandler_Create(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		_, r := newServiceRecordRouter(t)

		w := serve(r, http.MethodPost, "/v1/services", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		_, r := newServiceRecordRouter(t)

		w := serve(r, http.MethodPost, "/v1/services", `{"date":"2026-10-19","client_name":"Ana","device_name":"Moto G","service_type":"Tela","charged_amount":"abc"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "INVALID_SERVICE_AMOUNT") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		uc, r := newServiceRecordRouter(t)
		uc.EXPECT().Create(gomock.Any(), testSubject, gomock.Any()).Return(entities.ServiceRecord{}, usecase.ErrServiceFieldRequired)

		w := serve(r, http.MethodPost, "/v1/services", `{"date":"2026-10-19"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("date shortcut", func(t *testing.T) {
		uc, r := newServiceRecordRouter(t)
		uc.EXPECT().DateShortcut("yesterday").Return("2026-10-18", nil)
		uc.EXPECT().Create(gomock.Any(), testSubject, gomock.Any()).DoAndReturn(
			func(_ any, _ string, f entities.ServiceRecordFields) (entities.ServiceRecord, error) {
				if f.Date != "2026-10-18" {
					t.Fatalf("expected resolved date, got %q", f.Date)
				}
				return sampleRecord(), nil
			})

		w := serve(r, http.MethodPost, "/v1/services", `{"date_shortcut":"yesterday","client_name":"Ana","device_name":"Moto G","service_type":"Tela"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("success with numeric amounts", func(t *testing.T) {
		uc, r := newServiceRecordRouter(t)
		uc.EXPECT().Create(gomock.Any(), testSubject, gomock.Any()).DoAndReturn(
			func(_ any, _ string, f entities.ServiceRecordFields) (entities.ServiceRecord, error) {
				if !f.PartsCost.Equal(decimal.RequireFromString("120")) || !f.ChargedAmount.Equal(decimal.RequireFromString("350.5")) {
					t.Fatalf("unexpected amounts: %+v", f)
				}
				return sampleRecord(), nil
			})

		w := serve(r, http.MethodPost, "/v1/services", `{"date":"2026-10-19","client_name":"Ana","device_name":"Moto G","service_type":"Tela","parts_cost":120,"charged_amount":"350.50"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"charged_amount":"350.50"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestServiceRecordHandler_GetAndUpdate(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, r := newServiceRecordRouter(t)
		uc.EXPECT().Get(gomock.Any(), testSubject, "missing").Return(entities.ServiceRecord{}, usecase.ErrServiceRecordNotFound)

		w := serve(r, http.MethodGet, "/v1/services/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update storage error", func(t *testing.T) {
		uc, r := newServiceRecordRouter(t)
		uc.EXPECT().Update(gomock.Any(), testSubject, "rec-1", gomock.Any()).Return(entities.ServiceRecord{}, fmt.Errorf("%w: down", usecase.ErrStorage))

		w := serve(r, http.MethodPut, "/v1/services/rec-1", `{"date":"2026-10-19","client_name":"Ana","device_name":"Moto G","service_type":"Tela"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("update success", func(t *testing.T) {
		uc, r := newServiceRecordRouter(t)
		uc.EXPECT().Update(gomock.Any(), testSubject, "rec-1", gomock.Any()).Return(sampleRecord(), nil)

		w := serve(r, http.MethodPut, "/v1/services/rec-1", `{"date":"2026-10-19","client_name":"Ana","device_name":"Moto G","service_type":"Tela"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceRecordHandler_Delete(t *testing.T) {
	t.Run("not confirmed", func(t *testing.T) {
		uc, r := newServiceRecordRouter(t)
		uc.EXPECT().Delete(gomock.Any(), testSubject, "rec-1", false).Return(usecase.ErrDeleteNotConfirmed)

		w := serve(r, http.MethodDelete, "/v1/services/rec-1", "")
		if w.Code != http.StatusPreconditionRequired {
			t.Fatalf("expected 428, got %d", w.Code)
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		uc, r := newServiceRecordRouter(t)
		uc.EXPECT().Delete(gomock.Any(), testSubject, "rec-1", true).Return(nil)

		w := serve(r, http.MethodDelete, "/v1/services/rec-1?confirm=true", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestServiceRecordHandler_ResolveDateShortcut(t *testing.T) {
	t.Run("today", func(t *testing.T) {
		uc, r := newServiceRecordRouter(t)
		uc.EXPECT().DateShortcut("today").Return("2026-10-19", nil)

		w := serve(r, http.MethodGet, "/v1/services/dates/today", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"date":"2026-10-19"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown", func(t *testing.T) {
		uc, r := newServiceRecordRouter(t)
		uc.EXPECT().DateShortcut("tomorrow").Return("", usecase.ErrUnknownDateShortcut)

		w := serve(r, http.MethodGet, "/v1/services/dates/tomorrow", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
