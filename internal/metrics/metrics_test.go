package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCheckerMetrics(t *testing.T) {
	m := Default()
	assert.Same(t, m, Default())

	before := testutil.ToFloat64(m.classifications.WithLabelValues("none"))
	m.ObserveClassification("")
	assert.Equal(t, before+1, testutil.ToFloat64(m.classifications.WithLabelValues("none")))

	before = testutil.ToFloat64(m.unlistedChecks.WithLabelValues("true"))
	m.ObserveUnlisted(true)
	assert.Equal(t, before+1, testutil.ToFloat64(m.unlistedChecks.WithLabelValues("true")))

	before = testutil.ToFloat64(m.upstreamErrors.WithLabelValues("helius"))
	m.UpstreamError("helius")
	assert.Equal(t, before+1, testutil.ToFloat64(m.upstreamErrors.WithLabelValues("helius")))

	before = testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss"))
	m.ObserveCacheLookup(false)
	assert.Equal(t, before+1, testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
}

func TestCheckerMetrics_NilSafe(t *testing.T) {
	var m *CheckerMetrics
	assert.NotPanics(t, func() {
		m.ObserveClassification("paid-at-sale")
		m.ObserveUnlisted(false)
		m.UpstreamError("helius")
		m.ObserveCacheLookup(true)
	})
}

func TestHandler(t *testing.T) {
	Default().ObserveClassification("partial")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "royalty_classifications_total"))
}
