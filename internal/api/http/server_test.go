package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"versewake/internal/audio"
	passagedomain "versewake/internal/domain/passage"
	alarmrepo "versewake/internal/repository/alarm"
	settingsrepo "versewake/internal/repository/settings"
	"versewake/internal/service/lifecycle"
	"versewake/internal/trigger"
)

// fixedSource serves one short passage for every episode.
type fixedSource struct{}

func (fixedSource) GetPassage(context.Context) passagedomain.Passage {
	return passagedomain.New("test_1", "watch and pray", "Mark 14:38")
}

// testServer bundles the HTTP server with the underlying services.
type testServer struct {
	srv       *httptest.Server
	lifecycle *lifecycle.Service
	scheduler *trigger.TimerScheduler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dir := t.TempDir()

	alarms := alarmrepo.NewFileRepository(filepath.Join(dir, "alarms.json"))
	settings := settingsrepo.NewFileRepository(filepath.Join(dir, "settings.json"))
	scheduler := trigger.NewTimerScheduler()

	service := lifecycle.NewService(
		alarms,
		scheduler,
		fixedSource{},
		audio.NewLoggingPlayer(),
		audio.NewLoggingKeepWarm(),
	)
	scheduler.Notify(service.HandleTrigger)

	srv := httptest.NewServer(NewRouter(NewHandler(service, settings)))
	t.Cleanup(srv.Close)

	return &testServer{srv: srv, lifecycle: service, scheduler: scheduler}
}

// do performs a JSON request and decodes the envelope.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, APIResponse) {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}

	req, err := http.NewRequest(method, ts.srv.URL+path, &reqBody)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.srv.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	var envelope APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	return resp.StatusCode, envelope
}

// decodeData re-marshals the envelope data into the given target.
func decodeData(t *testing.T, envelope APIResponse, target any) {
	t.Helper()

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, target))
}

// createAlarm creates an alarm via the API and returns its id.
func (ts *testServer) createAlarm(t *testing.T, body map[string]any) string {
	t.Helper()

	status, envelope := ts.do(t, http.MethodPost, "/api/v1/alarms", body)
	require.Equal(t, http.StatusCreated, status)

	var created alarmResponse
	decodeData(t, envelope, &created)
	require.NotEmpty(t, created.ID)

	return created.ID
}

// ringAlarm fires the alarm's trigger directly and waits for the challenge.
func (ts *testServer) ringAlarm(t *testing.T, id string) {
	t.Helper()

	stored, err := ts.lifecycle.Get(context.Background(), id)
	require.NoError(t, err)

	ts.lifecycle.HandleTrigger(context.Background(), trigger.Fired{
		ID:      id,
		Payload: trigger.PayloadFromAlarm(stored),
		At:      time.Now(),
	})

	require.Eventually(t, func() bool {
		status, envelope := ts.do(t, http.MethodGet, "/api/v1/episodes/"+id, nil)
		if status != http.StatusOK {
			return false
		}

		var episode episodeResponse
		decodeData(t, envelope, &episode)

		return episode.State == string(lifecycle.EpisodeActive)
	}, 2*time.Second, 10*time.Millisecond)
}

// TestHealthz serves the liveness probe.
func TestHealthz(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	status, envelope := ts.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, status)
	require.True(t, envelope.Success)
}

// TestAlarmCRUD walks create, list, update, toggle and delete.
func TestAlarmCRUD(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	id := ts.createAlarm(t, map[string]any{
		"hour": 7, "minute": 30, "enabled": true, "label": "Morning",
	})

	status, envelope := ts.do(t, http.MethodGet, "/api/v1/alarms", nil)
	require.Equal(t, http.StatusOK, status)

	var listed []alarmResponse
	decodeData(t, envelope, &listed)
	require.Len(t, listed, 1)
	require.Equal(t, "Morning", listed[0].Label)

	status, envelope = ts.do(t, http.MethodPut, "/api/v1/alarms/"+id, map[string]any{
		"hour": 8, "minute": 15, "enabled": true, "snooze_minutes": 5,
	})
	require.Equal(t, http.StatusOK, status)

	var updated alarmResponse
	decodeData(t, envelope, &updated)
	require.Equal(t, 8, updated.Hour)
	require.Equal(t, 15, updated.Minute)

	status, envelope = ts.do(t, http.MethodPost, "/api/v1/alarms/"+id+"/toggle", nil)
	require.Equal(t, http.StatusOK, status)

	var toggled alarmResponse
	decodeData(t, envelope, &toggled)
	require.False(t, toggled.Enabled)

	status, _ = ts.do(t, http.MethodDelete, "/api/v1/alarms/"+id, nil)
	require.Equal(t, http.StatusOK, status)

	status, envelope = ts.do(t, http.MethodGet, "/api/v1/alarms", nil)
	require.Equal(t, http.StatusOK, status)

	listed = nil
	decodeData(t, envelope, &listed)
	require.Empty(t, listed)
}

// TestCreateAlarm_Invalid rejects out-of-range fields with 400.
func TestCreateAlarm_Invalid(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	status, envelope := ts.do(t, http.MethodPost, "/api/v1/alarms", map[string]any{
		"hour": 24, "minute": 0,
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.False(t, envelope.Success)
}

// TestUpdateAlarm_Unknown returns 404 for a missing id.
func TestUpdateAlarm_Unknown(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	status, _ := ts.do(t, http.MethodPut, "/api/v1/alarms/ghost", map[string]any{
		"hour": 7, "minute": 0, "snooze_minutes": 5,
	})
	require.Equal(t, http.StatusNotFound, status)
}

// TestSettings covers first-run defaults, updates and book code validation.
func TestSettings(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	status, envelope := ts.do(t, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, status)

	var current settingsResponse
	decodeData(t, envelope, &current)
	require.Len(t, current.SelectedBooks, 66)
	require.Equal(t, settingsrepo.SourceSelected, current.VerseSource)

	status, envelope = ts.do(t, http.MethodPut, "/api/v1/settings", map[string]any{
		"use_famous_verses": true,
		"selected_books":    []string{"JHN", "PSA"},
	})
	require.Equal(t, http.StatusOK, status)

	decodeData(t, envelope, &current)
	require.Equal(t, settingsrepo.SourceFamous, current.VerseSource)

	status, _ = ts.do(t, http.MethodPut, "/api/v1/settings", map[string]any{
		"selected_books": []string{"NOPE"},
	})
	require.Equal(t, http.StatusBadRequest, status)
}

// TestEpisode_NotRinging returns 404 before any fire.
func TestEpisode_NotRinging(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	status, _ := ts.do(t, http.MethodGet, "/api/v1/episodes/ghost", nil)
	require.Equal(t, http.StatusNotFound, status)
}

// TestEpisodeTypingFlow rings an alarm, mistypes once, then completes the
// challenge and verifies the alarm dismissed.
func TestEpisodeTypingFlow(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	id := ts.createAlarm(t, map[string]any{"hour": 7, "minute": 0, "enabled": true})
	ts.ringAlarm(t, id)

	status, envelope := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/episodes/%s/input", id), inputRequest{Input: "x"})
	require.Equal(t, http.StatusOK, status)

	var verdict inputResponse
	decodeData(t, envelope, &verdict)
	require.True(t, verdict.Rejected)
	require.NotNil(t, verdict.Episode)
	require.Equal(t, 1, verdict.Episode.Mistakes)

	text := "watch and pray"
	for i := 1; i <= len(text); i++ {
		status, envelope = ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/episodes/%s/input", id), inputRequest{Input: text[:i]})
		require.Equal(t, http.StatusOK, status)
	}

	verdict = inputResponse{}
	decodeData(t, envelope, &verdict)
	require.True(t, verdict.Completed)
	require.Nil(t, verdict.Episode)

	status, _ = ts.do(t, http.MethodGet, "/api/v1/episodes/"+id, nil)
	require.Equal(t, http.StatusNotFound, status)

	status, envelope = ts.do(t, http.MethodGet, "/api/v1/alarms", nil)
	require.Equal(t, http.StatusOK, status)

	var listed []alarmResponse
	decodeData(t, envelope, &listed)
	require.Len(t, listed, 1)
	require.False(t, listed[0].Enabled)
}

// TestSnooze_Disabled returns 409 when the alarm forbids snoozing.
func TestSnooze_Disabled(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	id := ts.createAlarm(t, map[string]any{"hour": 7, "minute": 0, "enabled": true})
	ts.ringAlarm(t, id)

	status, _ := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/episodes/%s/snooze", id), nil)
	require.Equal(t, http.StatusConflict, status)
}

// TestSnooze resolves the episode and registers the transient trigger.
func TestSnooze(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	id := ts.createAlarm(t, map[string]any{
		"hour": 7, "minute": 0, "enabled": true,
		"snooze_enabled": true, "snooze_minutes": 5,
	})
	ts.ringAlarm(t, id)

	status, _ := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/episodes/%s/snooze", id), nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = ts.do(t, http.MethodGet, "/api/v1/episodes/"+id, nil)
	require.Equal(t, http.StatusNotFound, status)
}
