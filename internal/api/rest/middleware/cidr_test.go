package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Tests

func TestNewTrustedNetHandler_Disabled(t *testing.T) {
	tn, err := NewTrustedNetHandler("", zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.False(t, tn.Enabled)
}

func TestNewTrustedNetHandler_InvalidCIDR(t *testing.T) {
	_, err := NewTrustedNetHandler("127.135.1.0", zap.NewNop().Sugar())
	var parseErr *net.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestNewTrustedNetHandler(t *testing.T) {
	tn, err := NewTrustedNetHandler("127.135.1.0/24", zap.NewNop().Sugar())
	require.NoError(t, err)
	mask := net.IPMask(net.ParseIP("255.255.255.0").To4())
	assert.True(t, tn.Enabled)
	assert.Equal(t, &net.IPNet{IP: net.ParseIP("127.135.1.0").To4(), Mask: mask}, tn.IPNet)
}

func TestTrustedNetHandler_Handle(t *testing.T) {
	router := chi.NewRouter()
	ts := httptest.NewServer(router)
	defer ts.Close()
	tn, err := NewTrustedNetHandler("127.135.1.0/24", zap.NewNop().Sugar())
	require.NoError(t, err)
	router.Use(tn.Handle)
	router.Get("/get", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("trusted"))
	})

	tests := []struct {
		name    string
		headers map[string]string
		code    int
	}{
		{
			name: "loopback outside the subnet",
			code: http.StatusForbidden,
		},
		{
			name:    "X-Real-IP inside the subnet",
			headers: map[string]string{"X-Real-IP": "127.135.1.17"},
			code:    http.StatusOK,
		},
		{
			name:    "X-Forwarded-For inside the subnet",
			headers: map[string]string{"X-Forwarded-For": "127.135.1.18, 10.0.0.1"},
			code:    http.StatusOK,
		},
		{
			name:    "X-Real-IP outside the subnet",
			headers: map[string]string{"X-Real-IP": "10.0.0.1"},
			code:    http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := resty.New().R().SetHeaders(tt.headers).Get(ts.URL + "/get")
			require.NoError(t, err)
			assert.Equal(t, tt.code, res.StatusCode())
		})
	}
}
