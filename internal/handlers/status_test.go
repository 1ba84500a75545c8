package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lwalden/chartview-backend/internal/errs"
	"github.com/lwalden/chartview-backend/internal/models"
)

// --- Shared response handler stub ---

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error

	writeErrorCalled bool
	writeErrorStatus int
	writeErrorCode   string
	writeErrorMsg    string
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, code, message string) {
	s.writeErrorCalled = true
	s.writeErrorStatus = status
	s.writeErrorCode = code
	s.writeErrorMsg = message
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

// --- Stub service ---

type stubStatusService struct {
	created    *models.StatusCheck
	createErr  error
	checks     []models.StatusCheck
	listErr    error
	lastClient string
}

func (s *stubStatusService) Create(_ context.Context, clientName string) (*models.StatusCheck, error) {
	s.lastClient = clientName
	return s.created, s.createErr
}

func (s *stubStatusService) List(_ context.Context) ([]models.StatusCheck, error) {
	return s.checks, s.listErr
}

// --- Tests ---

func TestRoot(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewStatusHandlers(&Deps{ResponseHandler: resp, StatusSvc: &stubStatusService{}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.Root(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	msg, ok := resp.writeSuccessData.(map[string]string)
	if !ok || msg["message"] != "Hello World" {
		t.Fatalf("unexpected payload: %v", resp.writeSuccessData)
	}
}

func TestCreateStatusSuccess(t *testing.T) {
	svc := &stubStatusService{created: &models.StatusCheck{ID: "s1", ClientName: "probe-1"}}
	resp := &stubResponseHandler{}
	h := NewStatusHandlers(&Deps{ResponseHandler: resp, StatusSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/status", strings.NewReader(`{"client_name":"probe-1"}`))
	rr := httptest.NewRecorder()
	h.CreateStatus(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	if svc.lastClient != "probe-1" {
		t.Fatalf("service received wrong client name: %q", svc.lastClient)
	}
}

func TestCreateStatusInvalidJSON(t *testing.T) {
	svc := &stubStatusService{}
	resp := &stubResponseHandler{}
	h := NewStatusHandlers(&Deps{ResponseHandler: resp, StatusSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/status", strings.NewReader("not-json"))
	rr := httptest.NewRecorder()
	h.CreateStatus(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError on invalid JSON")
	}
	if resp.writeSuccessCalled {
		t.Fatal("WriteSuccess should not be called on invalid JSON")
	}
}

func TestCreateStatusServiceError(t *testing.T) {
	svc := &stubStatusService{createErr: errs.NewValidationError("client_name is required")}
	resp := &stubResponseHandler{}
	h := NewStatusHandlers(&Deps{ResponseHandler: resp, StatusSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/status", strings.NewReader(`{"client_name":""}`))
	rr := httptest.NewRecorder()
	h.CreateStatus(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected handler to delegate error to HandleError")
	}
}

func TestListStatus(t *testing.T) {
	svc := &stubStatusService{checks: []models.StatusCheck{{ID: "s1"}, {ID: "s2"}}}
	resp := &stubResponseHandler{}
	h := NewStatusHandlers(&Deps{ResponseHandler: resp, StatusSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rr := httptest.NewRecorder()
	h.ListStatus(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200")
	}
	checks, ok := resp.writeSuccessData.([]models.StatusCheck)
	if !ok || len(checks) != 2 {
		t.Fatalf("unexpected payload: %v", resp.writeSuccessData)
	}
}
