package httpapi

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scatterbrain-dev/scatterbrain/internal/engine"
)

// TestEventsStreamEmitsUpdateOnMutation drives the SSE endpoint over a real
// listener (httptest.NewServer, not ResponseRecorder, since a recorder
// never unblocks a streaming handler) and asserts that a mutation on the
// subscribed plan produces exactly one "event: update" record.
func TestEventsStreamEmitsUpdateOnMutation(t *testing.T) {
	eng := engine.New(nil)
	s := New(eng, ":0", nil)

	mux := http.NewServeMux()
	s.routes(mux)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	id, err := eng.CreatePlan("build X", "")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/ui/events/0", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	go func() {
		time.Sleep(50 * time.Millisecond)
		_, _ = eng.AddTask(id, nil, "root task", 0, "")
	}()

	scanner := bufio.NewScanner(resp.Body)
	var sawUpdate bool
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "event: update") {
			sawUpdate = true
			break
		}
	}
	assert.True(t, sawUpdate, "expected an SSE update record after the mutation")
}

// TestEventsStreamIgnoresOtherPlans confirms the stream filters to the
// requested plan id: a mutation on a different plan must not produce an
// update record before the subscribed plan's own mutation does.
func TestEventsStreamIgnoresOtherPlans(t *testing.T) {
	eng := engine.New(nil)
	s := New(eng, ":0", nil)

	mux := http.NewServeMux()
	s.routes(mux)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	idA, err := eng.CreatePlan("A", "")
	require.NoError(t, err)
	idB, err := eng.CreatePlan("B", "")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/ui/events/0", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var subscribedMutated atomic.Bool
	go func() {
		time.Sleep(20 * time.Millisecond)
		_, _ = eng.AddTask(idB, nil, "other plan task", 0, "")
		time.Sleep(50 * time.Millisecond)
		subscribedMutated.Store(true)
		_, _ = eng.AddTask(idA, nil, "subscribed plan task", 0, "")
	}()

	scanner := bufio.NewScanner(resp.Body)
	var updates int
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "event: update") {
			assert.True(t, subscribedMutated.Load(), "update arrived before the subscribed plan was mutated")
			updates++
			break
		}
	}
	assert.Equal(t, 1, updates)
}
