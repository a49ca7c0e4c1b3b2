package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New()
	m.Observe("redeem", "ok")
	m.Observe("redeem", "already_redeemed")
	m.Observe("redeem", "already_redeemed")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("redeem", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("redeem", "already_redeemed")))
}

func TestObserveCompile(t *testing.T) {
	m := New()
	m.ObserveCompile(nil)
	m.ObserveCompile(errors.New("boom"))
	m.ObserveCompile(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.compilations.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.compilations.WithLabelValues("error")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.Observe("create", "ok")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `ticketing_redemption_operations_total{operation="create",result="ok"} 1`)
}
