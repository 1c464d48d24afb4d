package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/ocean_watch/internal/config"
	"github.com/shenikar/ocean_watch/internal/metrics"
)

const testPayload = `{"report_id":"7f8d2c1e-3b4a-4c5d-8e9f-0a1b2c3d4e5f","hazard_type":"tsunami_warning","severity":"critical","description":"Large waves","submitted_at":"2025-03-14T09:30:00Z"}`

func newTestWorker(t *testing.T, url string, clock clockwork.Clock) (*WebhookWorker, *metrics.Metrics) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Second,
	}
	m := metrics.NewMetricsForTesting()
	return NewWebhookWorker(nil, logger, cfg, m, clock), m
}

func TestProcessEvent_SignsAndDelivers(t *testing.T) {
	var (
		gotBody      string
		gotSignature string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(signatureHeader)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	worker, m := newTestWorker(t, srv.URL, clockwork.NewFakeClock())

	worker.processEvent(context.Background(), testPayload)

	assert.JSONEq(t, testPayload, gotBody)
	assert.Equal(t, generateHMACSHA256(testPayload, "s3cret"), gotSignature)
	assert.Len(t, gotSignature, 64)
	assert.InDelta(t, 1, testutil.ToFloat64(m.WebhookDeliveries.WithLabelValues("delivered")), 1e-9)
}

func TestProcessEvent_RetriesWithBackoff(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	clock := clockwork.NewFakeClock()
	worker, m := newTestWorker(t, srv.URL, clock)

	done := make(chan struct{})
	go func() {
		worker.processEvent(context.Background(), testPayload)
		close(done)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// первая пауза - базовая задержка, вторая - вдвое больше
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Second)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(2 * time.Second)

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("worker did not finish")
	}

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.InDelta(t, 1, testutil.ToFloat64(m.WebhookDeliveries.WithLabelValues("delivered")), 1e-9)
}

func TestProcessEvent_GivesUp(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	clock := clockwork.NewFakeClock()
	worker, m := newTestWorker(t, srv.URL, clock)
	worker.cfg.WebhookMaxRetries = 2

	done := make(chan struct{})
	go func() {
		worker.processEvent(context.Background(), testPayload)
		close(done)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Second)

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("worker did not finish")
	}

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.InDelta(t, 1, testutil.ToFloat64(m.WebhookDeliveries.WithLabelValues("failed")), 1e-9)
}

func TestProcessEvent_SkipsWithoutURL(t *testing.T) {
	worker, m := newTestWorker(t, "", clockwork.NewFakeClock())

	worker.processEvent(context.Background(), testPayload)

	assert.InDelta(t, 1, testutil.ToFloat64(m.WebhookDeliveries.WithLabelValues("skipped")), 1e-9)
}

func TestProcessEvent_DropsMalformedPayload(t *testing.T) {
	worker, m := newTestWorker(t, "http://127.0.0.1:0", clockwork.NewFakeClock())

	worker.processEvent(context.Background(), "not json")

	assert.Equal(t, 0, testutil.CollectAndCount(m.WebhookDeliveries))
}

func TestGenerateHMACSHA256(t *testing.T) {
	// RFC 4231, test case 2
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		generateHMACSHA256("what do ya want for nothing?", "Jefe"))
}
