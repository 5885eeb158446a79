package output

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubestat/cubestat-go/daemon/metricname"
	"github.com/cubestat/cubestat-go/daemon/store"
)

func TestJSONHandlerReportsCurrentAndHistory(t *testing.T) {
	st := store.New(10, nil)
	name := metricname.MustNew("memory.system.total.used.percent")
	st.Ingest(map[metricname.Name]float64{name: 10})
	st.Ingest(map[metricname.Name]float64{name: 20})

	h := &JSONHandler{Store: st}
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]seriesJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	entry, ok := body[name.String()]
	require.True(t, ok)
	assert.Equal(t, 20.0, entry.Current)
	assert.Equal(t, []float64{10, 20}, entry.History)
}

func TestRouterServesMetricsRoute(t *testing.T) {
	st := store.New(10, nil)
	r := NewRouter(&JSONHandler{Store: st})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
