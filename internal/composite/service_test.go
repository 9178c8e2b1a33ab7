package composite_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finserv-tools/bank_management_app/internal/apperrors"
	"github.com/finserv-tools/bank_management_app/internal/composite"
	"github.com/finserv-tools/bank_management_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestGetClientSummary_AssemblesDownstreamData(t *testing.T) {
	clientSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/clients/client-1", r.URL.Path)
		writeJSON(t, w, dto.ClientResponse{ClientID: "client-1", Name: "Jane Roe"})
	}))
	defer clientSrv.Close()

	accountSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/accounts":
			require.Equal(t, "client-1", r.URL.Query().Get("clientId"))
			writeJSON(t, w, []dto.AccountResponse{{AccountNumber: "ACC-001", ClientID: "client-1"}})
		case "/api/v1/accounts/ACC-001/transactions":
			writeJSON(t, w, []dto.TransactionResponse{{ID: 1, AccountNumber: "ACC-001"}})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer accountSrv.Close()

	svc := composite.NewService(
		composite.NewClientServiceClient(clientSrv.URL),
		composite.NewAccountServiceClient(accountSrv.URL),
	)

	summary, err := svc.GetClientSummary(context.Background(), "client-1")

	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", summary.Client.Name)
	require.Len(t, summary.Accounts, 1)
	assert.Equal(t, "ACC-001", summary.Accounts[0].Account.AccountNumber)
	require.Len(t, summary.Accounts[0].Transactions, 1)
	assert.Equal(t, int64(1), summary.Accounts[0].Transactions[0].ID)
}

func TestGetClientSummary_ClientNotFound(t *testing.T) {
	clientSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer clientSrv.Close()

	accountSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("account service must not be called when the client lookup fails")
	}))
	defer accountSrv.Close()

	svc := composite.NewService(
		composite.NewClientServiceClient(clientSrv.URL),
		composite.NewAccountServiceClient(accountSrv.URL),
	)

	summary, err := svc.GetClientSummary(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, summary)
}
