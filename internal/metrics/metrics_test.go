package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditsCounter(t *testing.T) {
	before := testutil.ToFloat64(Edits.WithLabelValues("remove", "applied"))
	Edits.WithLabelValues("remove", "applied").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(Edits.WithLabelValues("remove", "applied")))
}

func TestObservePass(t *testing.T) {
	ObservePass("unit")()
	assert.Equal(t, 1, testutil.CollectAndCount(PassDuration, "voxel_generation_pass_seconds"))
}

func TestHandlerExposesRegistry(t *testing.T) {
	FacesEmitted.Add(6)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "voxel_faces_emitted_total"))
}

func TestServeDisabled(t *testing.T) {
	assert.Nil(t, Serve(""))
}
