package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flamesdigital/flames-api/internal/database"
	"github.com/flamesdigital/flames-api/internal/submissions"
)

type fakeSubmissionStore struct {
	nextID string
	calls  int
}

func (f *fakeSubmissionStore) Available() bool { return true }

func (f *fakeSubmissionStore) InsertOne(ctx context.Context, col string, doc interface{}) (string, error) {
	f.calls++
	return f.nextID, nil
}

func postJSON(g *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func TestSubmitInquiryDemoMode(t *testing.T) {
	g := gin.New()
	RegisterSubmissionRoutes(g, submissions.NewService(database.None()))

	w := postJSON(g, "/inquiries", `{"name":"Ana","email":"ana@example.com","message":"hello there"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, submissions.DemoID, resp["id"])
}

func TestSubmitInquiryInvalidEmail(t *testing.T) {
	st := &fakeSubmissionStore{nextID: "should-not-be-used"}
	g := gin.New()
	RegisterSubmissionRoutes(g, submissions.NewService(st))

	w := postJSON(g, "/inquiries", `{"name":"Ana","email":"not-an-email","message":"hello"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	// rejected at the boundary, before any store interaction
	assert.Zero(t, st.calls)
}

func TestSubmitInquiryMissingMessage(t *testing.T) {
	g := gin.New()
	RegisterSubmissionRoutes(g, submissions.NewService(database.None()))

	w := postJSON(g, "/inquiries", `{"name":"Ana","email":"ana@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitJobapplicationBadResumeURL(t *testing.T) {
	g := gin.New()
	RegisterSubmissionRoutes(g, submissions.NewService(database.None()))

	w := postJSON(g, "/jobapplications", `{"name":"Bo","email":"bo@example.com","role":"SRE","resume_url":"not a url"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitJobapplicationPersists(t *testing.T) {
	st := &fakeSubmissionStore{nextID: "66b2a7e19c3f"}
	g := gin.New()
	RegisterSubmissionRoutes(g, submissions.NewService(st))

	w := postJSON(g, "/jobapplications", `{"name":"Bo","email":"bo@example.com","role":"SRE","resume_url":"https://example.com/cv.pdf"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, resp["id"])
	assert.Equal(t, 1, st.calls)
}
