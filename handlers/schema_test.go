package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaEndpoint(t *testing.T) {
	g := gin.New()
	RegisterSchemaRoutes(g)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schema", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 7)
	for _, name := range []string{"inquiry", "jobapplication", "service", "project", "testimonial", "blogpost", "opening"} {
		def, ok := got[name]
		require.True(t, ok, "missing entity %q", name)
		assert.Equal(t, "object", def["type"])
	}

	props, ok := got["testimonial"]["properties"].(map[string]interface{})
	require.True(t, ok)
	rating, ok := props["rating"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), rating["minimum"])
	assert.Equal(t, float64(5), rating["maximum"])
}
