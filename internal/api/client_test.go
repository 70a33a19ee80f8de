package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankctl/internal/api"
	"bankctl/internal/domain"
)

func TestClient_ErrorNormalisation(t *testing.T) {
	t.Parallel()

	t.Run("non-json body synthesises code from status", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		}))
		defer srv.Close()

		_, err := api.New(srv.URL, nil).Me(context.Background(), "tok")
		var apiErr *domain.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "http_500", apiErr.Code)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	})

	t.Run("structured code is surfaced", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "insufficient_funds"})
		}))
		defer srv.Close()

		_, err := api.New(srv.URL, nil).Transfer(context.Background(), "tok", domain.TransferInput{})
		var apiErr *domain.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "insufficient_funds", apiErr.Code)
	})

	t.Run("field detail is kept", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"validation_error","fields":[{"field":"to_user_email","message":"cannot be empty"}]}`))
		}))
		defer srv.Close()

		_, err := api.New(srv.URL, nil).Transfer(context.Background(), "tok", domain.TransferInput{})
		var apiErr *domain.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "validation_error", apiErr.Code)
		msg, ok := apiErr.Field("to_user_email")
		require.True(t, ok)
		assert.Equal(t, "cannot be empty", msg)
	})

	t.Run("json error body without code falls back to status", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		_, err := api.New(srv.URL, nil).Accounts(context.Background(), "tok")
		var apiErr *domain.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "http_403", apiErr.Code)
	})

	t.Run("transport failure is not an api error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		_, err := api.New(srv.URL, nil).Accounts(context.Background(), "tok")
		require.Error(t, err)
		var apiErr *domain.APIError
		assert.False(t, errors.As(err, &apiErr))
	})
}

func TestClient_RequestShaping(t *testing.T) {
	t.Parallel()

	t.Run("bearer header and post body", func(t *testing.T) {
		t.Parallel()
		var gotAuth, gotMethod, gotContentType string
		var gotBody domain.TransferInput
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotMethod = r.Method
			gotContentType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"tx-1","type":"transfer","to_account_id":"acc-2","amount_cents":1050,"currency":"USD","description":"d","created_at":"2024-01-02T03:04:05Z"}`))
		}))
		defer srv.Close()

		in := domain.TransferInput{ToUserEmail: "bob@example.com", Currency: domain.USD, AmountCents: 1050}
		tx, err := api.New(srv.URL, nil).Transfer(context.Background(), "secret-token", in)
		require.NoError(t, err)
		assert.Equal(t, "Bearer secret-token", gotAuth)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, in, gotBody)
		assert.Equal(t, "tx-1", tx.ID)
		assert.Equal(t, int64(1050), tx.AmountCents)
	})

	t.Run("request id header attached", func(t *testing.T) {
		t.Parallel()
		var gotRequestID string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRequestID = r.Header.Get("X-Request-Id")
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		_, err := api.New(srv.URL, nil).Accounts(context.Background(), "tok")
		require.NoError(t, err)
		assert.NotEmpty(t, gotRequestID)
	})

	t.Run("empty query values are elided", func(t *testing.T) {
		t.Parallel()
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		client := api.New(srv.URL, nil)

		_, err := client.Transactions(context.Background(), "tok", domain.TransactionFilter{})
		require.NoError(t, err)
		assert.Empty(t, gotQuery)

		_, err = client.Transactions(context.Background(), "tok", domain.TransactionFilter{
			Type: domain.TransactionExchange,
			Page: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, "page=2&type=exchange", gotQuery)
	})

	t.Run("empty success payload", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		err := api.New(srv.URL, nil).Logout(context.Background(), "tok", domain.LogoutInput{AccessToken: "tok"})
		require.NoError(t, err)
	})
}

// Two in-flight requests resolving in reverse order must each land in their
// own result, with no cross-contamination.
func TestClient_ConcurrentRequestsStayIndependent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/accounts":
			// Delay so the accounts response arrives after transactions.
			time.Sleep(50 * time.Millisecond)
			_, _ = w.Write([]byte(`[{"id":"acc-1","currency":"USD","balance_cents":12345}]`))
		case "/transactions":
			_, _ = w.Write([]byte(`[{"id":"tx-9","type":"exchange","to_account_id":"acc-1","amount_cents":500,"currency":"EUR","description":"","created_at":"2024-01-02T03:04:05Z"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := api.New(srv.URL, nil)

	var (
		wg            sync.WaitGroup
		accounts      []domain.Account
		transactions  []domain.Transaction
		accErr, txErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		accounts, accErr = client.Accounts(context.Background(), "tok")
	}()
	go func() {
		defer wg.Done()
		transactions, txErr = client.Transactions(context.Background(), "tok", domain.TransactionFilter{Limit: 5})
	}()
	wg.Wait()

	require.NoError(t, accErr)
	require.NoError(t, txErr)
	require.Len(t, accounts, 1)
	require.Len(t, transactions, 1)
	assert.Equal(t, "acc-1", accounts[0].ID)
	assert.Equal(t, int64(12345), accounts[0].BalanceCents)
	assert.Equal(t, "tx-9", transactions[0].ID)
	assert.Equal(t, domain.TransactionExchange, transactions[0].Type)
}

func TestClient_CancelledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := api.New(srv.URL, nil).Accounts(ctx, "tok")
	require.ErrorIs(t, err, context.Canceled)
}
