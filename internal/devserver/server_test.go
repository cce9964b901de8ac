package devserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splittab/splittab/pkg/api"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New("dev-token", logger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func doJSON(t *testing.T, method, url, token string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestAuthRequired(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "wrong token", token: "not-the-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, http.MethodGet, ts.URL+"/sync/status", tt.token, nil, nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestPush_AcceptsAndAssignsServerIDs(t *testing.T) {
	srv, ts := newTestServer(t)

	req := api.PushRequest{Receipts: []api.Receipt{
		{ID: "rec-a", Data: json.RawMessage(`{"merchant_name":"Cafe Luna"}`)},
		{ID: "rec-b", Data: json.RawMessage(`{"merchant_name":"QuickMart"}`)},
	}}

	var pushResp api.PushResponse
	resp := doJSON(t, http.MethodPost, ts.URL+"/sync/push", "dev-token", req, &pushResp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, pushResp.Success)
	assert.Equal(t, 2, pushResp.Synced)
	assert.Zero(t, pushResp.Errors)
	assert.Equal(t, 2, srv.ReceiptCount())

	// Pushing again keeps the assigned server identity stable.
	var again api.PushResponse
	doJSON(t, http.MethodPost, ts.URL+"/sync/push", "dev-token", req, &again)

	var pullResp api.PullResponse
	doJSON(t, http.MethodGet, ts.URL+"/sync/pull", "dev-token", nil, &pullResp)

	require.Len(t, pullResp.Receipts, 2)
	for _, rec := range pullResp.Receipts {
		assert.NotEmpty(t, rec.ServerID)
		assert.NotNil(t, rec.SyncedAt)
	}
}

func TestPush_RejectNext(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.RejectNext(1)

	req := api.PushRequest{Receipts: []api.Receipt{
		{ID: "rec-a", Data: json.RawMessage(`{}`)},
		{ID: "rec-b", Data: json.RawMessage(`{}`)},
	}}

	var pushResp api.PushResponse
	doJSON(t, http.MethodPost, ts.URL+"/sync/push", "dev-token", req, &pushResp)

	assert.Equal(t, 1, pushResp.Synced)
	assert.Equal(t, 1, pushResp.Errors)
	assert.Equal(t, 1, srv.ReceiptCount())

	// The knob resets after one push.
	doJSON(t, http.MethodPost, ts.URL+"/sync/push", "dev-token", req, &pushResp)
	assert.Equal(t, 2, pushResp.Synced)
}

func TestPush_SyncedIDs(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.UseSyncedIDs(true)
	srv.RejectNext(1)

	req := api.PushRequest{Receipts: []api.Receipt{
		{ID: "rec-a", Data: json.RawMessage(`{}`)},
		{ID: "rec-b", Data: json.RawMessage(`{}`)},
	}}

	var pushResp api.PushResponse
	doJSON(t, http.MethodPost, ts.URL+"/sync/push", "dev-token", req, &pushResp)

	assert.Equal(t, []string{"rec-a"}, pushResp.SyncedIDs)
}

func TestPull_WatermarkFilter(t *testing.T) {
	srv, ts := newTestServer(t)

	early := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)
	srv.Seed(api.Receipt{ID: "rec-old", Data: json.RawMessage(`{}`), SyncedAt: &early})
	srv.Seed(api.Receipt{ID: "rec-new", Data: json.RawMessage(`{}`), SyncedAt: &late})

	// No watermark: everything comes back.
	var full api.PullResponse
	doJSON(t, http.MethodGet, ts.URL+"/sync/pull", "dev-token", nil, &full)
	assert.Len(t, full.Receipts, 2)
	require.NotNil(t, full.LastSyncAt)
	assert.True(t, full.LastSyncAt.Equal(late))

	// At the early watermark: only the strictly newer record.
	var partial api.PullResponse
	url := ts.URL + "/sync/pull?lastSyncAt=" + early.Format(time.RFC3339Nano)
	doJSON(t, http.MethodGet, url, "dev-token", nil, &partial)
	require.Len(t, partial.Receipts, 1)
	assert.Equal(t, "rec-new", partial.Receipts[0].ID)

	// At the latest watermark: nothing new.
	var empty api.PullResponse
	url = ts.URL + "/sync/pull?lastSyncAt=" + late.Format(time.RFC3339Nano)
	doJSON(t, http.MethodGet, url, "dev-token", nil, &empty)
	assert.Empty(t, empty.Receipts)
}

func TestPull_InvalidWatermark(t *testing.T) {
	_, ts := newTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.URL+"/sync/pull?lastSyncAt=yesterday", "dev-token", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatus_Gate(t *testing.T) {
	srv, ts := newTestServer(t)

	var gate api.SyncGateResponse
	doJSON(t, http.MethodGet, ts.URL+"/sync/status", "dev-token", nil, &gate)
	assert.True(t, gate.Allowed)

	srv.SetGate(false, "subscription expired")

	doJSON(t, http.MethodGet, ts.URL+"/sync/status", "dev-token", nil, &gate)
	assert.False(t, gate.Allowed)
	assert.Equal(t, "subscription expired", gate.Reason)
}
