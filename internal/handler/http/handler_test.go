package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eka-mr/internal/config"
	"github.com/MKhiriev/go-eka-mr/internal/logger"
	"github.com/MKhiriev/go-eka-mr/internal/store"
	"github.com/MKhiriev/go-eka-mr/models"
)

// newTestServer поднимает httptest-сервер с полным роутером мока
func newTestServer(t *testing.T, cfg *config.MockConfig) *httptest.Server {
	t.Helper()

	if cfg.TokenSignKey == "" {
		cfg.TokenSignKey = "test-sign-key"
	}
	if cfg.TokenDuration == 0 {
		cfg.TokenDuration = time.Hour
	}

	h := NewHandler(cfg, store.NewDocumentStore(), logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

// loginAndGetToken проходит аутентификацию и возвращает access_token
func loginAndGetToken(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	body := `{"client_id":"client-1","client_secret":"secret-1"}`
	resp, err := http.Post(srv.URL+"/connect-auth/v1/account/login", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var token models.AccessToken
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&token))
	require.NotEmpty(t, token.Token)
	return token.Token
}

// submitTestDocument загружает файл и возвращает document_id
func submitTestDocument(t *testing.T, srv *httptest.Server, token, query string) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "report.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/mr/api/v2/docs?"+query, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if resp.StatusCode != http.StatusOK {
		return resp, ""
	}

	var submission models.DocumentSubmission
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&submission))
	return resp, submission.DocumentID
}

func fetchResult(t *testing.T, srv *httptest.Server, token, documentID string) (*http.Response, models.DocumentResult) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/mr/api/v1/docs/"+documentID+"/result", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var result models.DocumentResult
	if resp.StatusCode == http.StatusOK {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &result))
		result.Raw = raw
	}
	return resp, result
}
