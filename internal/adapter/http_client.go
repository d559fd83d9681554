package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-eka-mr/internal/config"
	"github.com/MKhiriev/go-eka-mr/internal/logger"
	"github.com/MKhiriev/go-eka-mr/models"
	"github.com/go-resty/resty/v2"
)

// Eka Care API resource paths. Fixed by the remote service; changing them
// breaks compatibility.
const (
	authEndpoint   = "/connect-auth/v1/account/login"
	docsEndpoint   = "/mr/api/v2/docs"
	resultEndpoint = "/mr/api/v1/docs/{document_id}/result"
)

type httpDocumentAPI struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPDocumentAPI creates a [DocumentAPI] backed by a resty HTTP client
// pointed at cfg.BaseURL. The adapter holds one reusable connection pool for
// its whole lifetime; call Close when done.
func NewHTTPDocumentAPI(cfg config.ClientAPI, log *logger.Logger) DocumentAPI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultBaseURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpDocumentAPI{client: cli, logger: log}
}

func (h *httpDocumentAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpDocumentAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpDocumentAPI) Login(ctx context.Context, creds models.Credentials) (models.AccessToken, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(authEndpoint)
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessToken{}, fmt.Errorf("login: %w", err)
	}

	var token models.AccessToken
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.AccessToken{}, fmt.Errorf("decode login response: %w", err)
	}
	if token.Token == "" {
		return models.AccessToken{}, ErrNoAccessToken
	}

	h.SetToken(token.Token)
	h.logger.Debug().Msg("authenticated against eka care api")
	return token, nil
}

func (h *httpDocumentAPI) SubmitDocument(ctx context.Context, filePath, docType string, task models.Task) (models.DocumentSubmission, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return models.DocumentSubmission{}, fmt.Errorf("open document file: %w", err)
	}
	defer file.Close()

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(task.QueryValues(docType)).
		SetMultipartField("file", filepath.Base(filePath), guessContentType(filePath), file).
		Post(docsEndpoint)
	if err != nil {
		return models.DocumentSubmission{}, fmt.Errorf("submit document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentSubmission{}, fmt.Errorf("submit document: %w", err)
	}

	var submission models.DocumentSubmission
	if err = json.Unmarshal(resp.Body(), &submission); err != nil {
		return models.DocumentSubmission{}, fmt.Errorf("decode submit response: %w", err)
	}
	if submission.DocumentID == "" {
		return models.DocumentSubmission{}, ErrNoDocumentID
	}

	return submission, nil
}

func (h *httpDocumentAPI) FetchResult(ctx context.Context, documentID string) (models.DocumentResult, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("document_id", documentID).
		Get(resultEndpoint)
	if err != nil {
		return models.DocumentResult{}, fmt.Errorf("fetch result request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentResult{}, fmt.Errorf("fetch result: %w", err)
	}

	var result models.DocumentResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.DocumentResult{}, fmt.Errorf("decode result response: %w", err)
	}

	// keep the verbatim body so callers see every field the server sent
	result.Raw = append(json.RawMessage(nil), resp.Body()...)

	return result, nil
}

func (h *httpDocumentAPI) Close() {
	h.client.GetClient().CloseIdleConnections()
}

func (h *httpDocumentAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// guessContentType returns the MIME type for the file's extension, or
// application/octet-stream when the extension is unknown.
func guessContentType(filePath string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filePath)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrDocumentNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
