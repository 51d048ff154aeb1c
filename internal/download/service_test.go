package download

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testURL = "https://example.com/releases/download/PREREQUISITES/openspy.zip"

func newMockedService(t *testing.T) *Service {
	t.Helper()

	service := NewService(zap.NewNop())
	httpmock.ActivateNonDefault(service.Client().GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return service
}

func TestNewService(t *testing.T) {
	service := NewService(zap.NewNop())

	assert.NotNil(t, service.client)
	assert.Equal(t, UserAgent, service.client.Header.Get("User-Agent"))
	assert.Equal(t, 0, service.client.RetryCount)
}

func TestFetch_StreamsBody(t *testing.T) {
	service := newMockedService(t)
	httpmock.RegisterResponder(http.MethodGet, testURL, httpmock.NewStringResponder(http.StatusOK, "zip-bytes"))

	var buf bytes.Buffer
	n, err := service.Fetch(context.Background(), testURL, &buf)

	require.NoError(t, err)
	assert.Equal(t, int64(len("zip-bytes")), n)
	assert.Equal(t, "zip-bytes", buf.String())
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	service := newMockedService(t)
	httpmock.RegisterResponder(http.MethodGet, testURL, httpmock.NewStringResponder(http.StatusNotFound, "missing"))

	var buf bytes.Buffer
	_, err := service.Fetch(context.Background(), testURL, &buf)

	require.Error(t, err)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "404")
	assert.Empty(t, buf.String(), "error bodies must not be written")
}

func TestFetch_TransportError(t *testing.T) {
	service := newMockedService(t)
	httpmock.RegisterResponder(http.MethodGet, testURL, httpmock.NewErrorResponder(errors.New("connection reset")))

	var buf bytes.Buffer
	_, err := service.Fetch(context.Background(), testURL, &buf)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, 1, httpmock.GetTotalCallCount(), "no retries expected")
}

func TestFetch_ServerErrorIsNotRetried(t *testing.T) {
	service := newMockedService(t)
	httpmock.RegisterResponder(http.MethodGet, testURL, httpmock.NewStringResponder(http.StatusBadGateway, ""))

	_, err := service.Fetch(context.Background(), testURL, &bytes.Buffer{})

	require.Error(t, err)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}
