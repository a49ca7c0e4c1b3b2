package vault

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeVault(t *testing.T, sealed bool, secrets map[string]interface{}) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/sys/seal-status", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"sealed": sealed})
	})
	mux.HandleFunc("/v1/secret/ticketing", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "root", r.Header.Get("X-Vault-Token"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": secrets})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSecretKV1(t *testing.T) {
	srv := fakeVault(t, false, map[string]interface{}{"locator_secret": "abc"})

	v, err := New("root", srv.URL, "secret/ticketing")
	require.NoError(t, err)

	got, err := v.Secret("locator_secret")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	_, err = v.Secret("staff_session_secret")
	assert.ErrorIs(t, err, ErrSecretNotFound)
}

func TestSecretKV2(t *testing.T) {
	srv := fakeVault(t, false, map[string]interface{}{
		"data":     map[string]interface{}{"staff_session_secret": "xyz"},
		"metadata": map[string]interface{}{"version": 3},
	})

	v, err := New("root", srv.URL, "secret/ticketing")
	require.NoError(t, err)

	got, err := v.Secret("staff_session_secret")
	require.NoError(t, err)
	assert.Equal(t, "xyz", got)
}

func TestNewSealed(t *testing.T) {
	srv := fakeVault(t, true, nil)

	_, err := New("root", srv.URL, "secret/ticketing")
	assert.Error(t, err)
}
