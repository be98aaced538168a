package blockchain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	domainerrors "github.com/saiisback/capy/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeClient_View(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/view", r.URL.Path)

		var req ViewRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "0xabc::capy::get_pair_view", req.Function)
		assert.NotNil(t, req.Arguments)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`["42", {"parent1": "0x1"}]`))
	}))
	defer server.Close()

	client := NewNodeClient(server.URL, time.Millisecond, time.Second)
	values, err := client.View(context.Background(), ViewRequest{Function: "0xabc::capy::get_pair_view"})
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.JSONEq(t, `"42"`, string(values[0]))
}

func TestNodeClient_View_AbortClassified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Move abort: E_NOT_INITIALIZED"}`))
	}))
	defer server.Close()

	client := NewNodeClient(server.URL, time.Millisecond, time.Second)
	_, err := client.View(context.Background(), ViewRequest{Function: "0xabc::capy::get_user_pairs_view"})
	assert.ErrorIs(t, err, domainerrors.ErrNotInitialized)
}

func TestNodeClient_HasResource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/accounts/0xmissing/resources" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"type":"0xabc::capy::CapyData","data":{}}]`))
	}))
	defer server.Close()

	client := NewNodeClient(server.URL, time.Millisecond, time.Second)

	ok, err := client.HasResource(context.Background(), "0x1", "0xabc::capy::CapyData")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.HasResource(context.Background(), "0x1", "0xabc::capy::Other")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = client.HasResource(context.Background(), "0xmissing", "0xabc::capy::CapyData")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNodeClient_WaitForTransaction_CommitsAfterPending(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case n == 1:
			w.WriteHeader(http.StatusNotFound)
		case n == 2:
			w.Write([]byte(`{"hash":"0xh","type":"pending_transaction"}`))
		default:
			w.Write([]byte(`{"hash":"0xh","type":"user_transaction","success":true,"vm_status":"Executed successfully"}`))
		}
	}))
	defer server.Close()

	client := NewNodeClient(server.URL, time.Millisecond, time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := client.WaitForTransaction(ctx, "0xh")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestNodeClient_WaitForTransaction_AbortMapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hash":"0xh","type":"user_transaction","success":false,"vm_status":"Move abort E_ALREADY_OWNED"}`))
	}))
	defer server.Close()

	client := NewNodeClient(server.URL, time.Millisecond, time.Second)
	_, err := client.WaitForTransaction(context.Background(), "0xh")
	assert.ErrorIs(t, err, domainerrors.ErrItemAlreadyOwned)
}

func TestNodeClient_WaitForTransaction_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewNodeClient(server.URL, time.Millisecond, 20*time.Millisecond)

	_, err := client.WaitForTransaction(context.Background(), "0xnever")
	assert.ErrorIs(t, err, domainerrors.ErrTransactionTimeout)
}
