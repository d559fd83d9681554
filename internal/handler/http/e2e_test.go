package http

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eka-mr/internal/adapter"
	"github.com/MKhiriev/go-eka-mr/internal/config"
	"github.com/MKhiriev/go-eka-mr/internal/logger"
	"github.com/MKhiriev/go-eka-mr/internal/service"
	"github.com/MKhiriev/go-eka-mr/models"
)

// Сквозные сценарии: настоящий adapter + service против полного роутера мока.

func newE2EService(t *testing.T, mockCfg *config.MockConfig) (service.DocumentService, adapter.DocumentAPI) {
	t.Helper()

	srv := newTestServer(t, mockCfg)
	api := adapter.NewHTTPDocumentAPI(config.ClientAPI{BaseURL: srv.URL}, logger.Nop())
	t.Cleanup(api.Close)

	_, err := api.Login(context.Background(), models.Credentials{ClientID: "client-1", ClientSecret: "secret-1"})
	require.NoError(t, err)

	return service.NewDocumentService(api, logger.Nop()), api
}

func e2eDocument(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg-bytes"), 0600))
	return path
}

func TestE2E_SubmitAndWaitCompletes(t *testing.T) {
	docs, _ := newE2EService(t, &config.MockConfig{ProcessingDelay: 120 * time.Millisecond})

	start := time.Now()
	result, err := docs.SubmitAndWait(context.Background(), e2eDocument(t), models.TaskSmart, service.WaitOptions{
		Interval: 100 * time.Millisecond,
		Timeout:  5 * time.Second,
	})

	require.NoError(t, err)
	assert.True(t, result.Completed())
	assert.Equal(t, models.StatusCompleted, result.Status)
	assert.NotEmpty(t, result.Raw)
	// первый опрос застаёт pending, второй — готовый результат
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestE2E_PerpetualPendingTimesOut(t *testing.T) {
	docs, _ := newE2EService(t, &config.MockConfig{ProcessingDelay: time.Hour})

	start := time.Now()
	_, err := docs.SubmitAndWait(context.Background(), e2eDocument(t), models.TaskSmart, service.WaitOptions{
		Interval: 200 * time.Millisecond,
		Timeout:  300 * time.Millisecond,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrWaitTimeout)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestE2E_FailedDocument(t *testing.T) {
	docs, _ := newE2EService(t, &config.MockConfig{ProcessingDelay: time.Millisecond, FailDocuments: true})

	_, err := docs.SubmitAndWait(context.Background(), e2eDocument(t), models.TaskBoth, service.WaitOptions{
		Interval: 50 * time.Millisecond,
		Timeout:  5 * time.Second,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrProcessingFailed)
}

func TestE2E_ExpiredTokenRejected(t *testing.T) {
	_, api := newE2EService(t, &config.MockConfig{TokenDuration: -time.Minute})

	// заставляем адаптер перелогиниться, чтобы получить уже истёкший токен
	_, err := api.Login(context.Background(), models.Credentials{ClientID: "client-1", ClientSecret: "secret-1"})
	require.NoError(t, err)

	_, err = api.FetchResult(context.Background(), "doc_1")

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}
