package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finserv-tools/bank_management_app/internal/apperrors"
	"github.com/finserv-tools/bank_management_app/internal/core/domain"
	portssvc "github.com/finserv-tools/bank_management_app/internal/core/ports/services"
	"github.com/finserv-tools/bank_management_app/internal/dto"
	"github.com/finserv-tools/bank_management_app/internal/handlers"
	"github.com/finserv-tools/bank_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) GetClientByIdentification(ctx context.Context, identification string) (*domain.Client, error) {
	args := m.Called(ctx, identification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type ClientHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	mockSvc *MockClientService
}

func (suite *ClientHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()

	suite.mockSvc = new(MockClientService)

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Client: suite.mockSvc,
	}, nil)
}

func (suite *ClientHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ClientHandlerTestSuite) TestGetClientByIdentification() {
	expected := &domain.Client{
		ClientID:       "client-1",
		Name:           "Jane Roe",
		Gender:         domain.Gender{Code: "FEMALE", Active: true},
		Identification: "ID-123",
		Status:         domain.Status{Code: domain.StatusActive, Active: true},
	}
	suite.mockSvc.On("GetClientByIdentification", mock.Anything, "ID-123").Return(expected, nil).Once()

	w := suite.get("/api/v1/clients/identification/ID-123")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ClientResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("client-1", resp.ClientID)
	suite.Equal("ID-123", resp.Identification)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestGetClientByIdentification_NotFound() {
	suite.mockSvc.On("GetClientByIdentification", mock.Anything, "ID-404").
		Return(nil, fmt.Errorf("client with identification ID-404: %w", apperrors.ErrNotFound)).Once()

	w := suite.get("/api/v1/clients/identification/ID-404")

	suite.Equal(http.StatusNotFound, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Not Found", resp.Error)
	suite.Equal("/api/v1/clients/identification/ID-404", resp.Path)
}

func (suite *ClientHandlerTestSuite) TestGetClientByID_RouteStillMatchesParam() {
	expected := &domain.Client{ClientID: "client-1", Name: "Jane Roe"}
	suite.mockSvc.On("GetClientByID", mock.Anything, "client-1").Return(expected, nil).Once()

	w := suite.get("/api/v1/clients/client-1")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "GetClientByIdentification", mock.Anything, mock.Anything)
}

func (suite *ClientHandlerTestSuite) TestCreateClient_UnknownGenderIsNotFound() {
	suite.mockSvc.On("CreateClient", mock.Anything, mock.AnythingOfType("dto.CreateClientRequest")).
		Return(nil, fmt.Errorf("gender %q: gender UNSET: %w", "UNSET", apperrors.ErrNotFound)).Once()

	payload := []byte(`{"name":"Jane Roe","gender":"UNSET","age":34,"identification":"ID-123","password":"correct-horse","status":"ACTIVE"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clients", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestClientHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
