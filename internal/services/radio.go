// Radio streamer [Remote] implementation
//
// Talks to the playback server over plain HTTP on the local network. The
// server exposes a small JSON API: GET /status, /stations and /volume, and
// POST /play, /stop, /pause, /resume, /volume and /stations/{id} (DELETE to
// remove). Success is a 200 or 201; anything else is treated as a failure.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dkarlsson/radiodeck/internal/models"
	"github.com/dkarlsson/radiodeck/internal/shared"
)

const defaultRadioBaseURL string = "http://localhost:8000"

// defaultRequestTimeout bounds every request; the API has no retries, so this
// is also the longest any single operation can block.
const defaultRequestTimeout = 5 * time.Second

// RadioService implements [Remote] against the radio streamer's HTTP API.
type RadioService struct {
	baseURL    string
	httpClient *http.Client
}

// NewRadioService creates a new radio server client.
//
// An empty baseURL falls back to localhost; a nil client gets a dedicated
// [http.Client] with the default request timeout.
func NewRadioService(baseURL string, client *http.Client) *RadioService {
	if baseURL == "" {
		baseURL = defaultRadioBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: defaultRequestTimeout}
	}

	return &RadioService{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// Name returns the server base URL.
func (r *RadioService) Name() string {
	return r.baseURL
}

// doGet performs a GET request and decodes the JSON response into result.
func (r *RadioService) doGet(ctx context.Context, endpoint string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s returned status %d", shared.ErrAPIRequest, endpoint, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
		}
	}

	return nil
}

// doSend performs a bodyless-or-JSON request (POST/DELETE) against endpoint.
//
// Success is HTTP 200 or 201, matching the server's mixed use of both.
func (r *RadioService) doSend(ctx context.Context, method, endpoint string, payload any) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%w: %s %s returned status %d", shared.ErrAPIRequest, method, endpoint, resp.StatusCode)
	}

	return nil
}

// Stations retrieves the station list from GET /stations.
//
// The server returns a flat ordered array; the caller replaces any prior list
// with this one wholesale.
func (r *RadioService) Stations(ctx context.Context) ([]models.Station, error) {
	var stations []models.Station
	if err := r.doGet(ctx, "/stations", &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// Play starts streaming the given station via POST /play.
func (r *RadioService) Play(ctx context.Context, stationID int) error {
	payload := struct {
		StationID int `json:"station_id"`
	}{StationID: stationID}

	return r.doSend(ctx, http.MethodPost, "/play", payload)
}

// Stop halts playback via POST /stop.
func (r *RadioService) Stop(ctx context.Context) error {
	return r.doSend(ctx, http.MethodPost, "/stop", nil)
}

// Pause suspends playback via POST /pause.
func (r *RadioService) Pause(ctx context.Context) error {
	return r.doSend(ctx, http.MethodPost, "/pause", nil)
}

// Resume continues playback via POST /resume.
func (r *RadioService) Resume(ctx context.Context) error {
	return r.doSend(ctx, http.MethodPost, "/resume", nil)
}

// SetVolume sets the playback volume via POST /volume.
//
// The value is clamped to [0,100] before it leaves this process; the server
// never sees an out-of-range volume.
func (r *RadioService) SetVolume(ctx context.Context, volume int) error {
	payload := struct {
		Volume int `json:"volume"`
	}{Volume: models.ClampVolume(volume)}

	return r.doSend(ctx, http.MethodPost, "/volume", payload)
}

// Volume reads the current volume via GET /volume. Returns -1 on failure.
func (r *RadioService) Volume(ctx context.Context) (int, error) {
	var resp struct {
		Volume int `json:"volume"`
	}

	if err := r.doGet(ctx, "/volume", &resp); err != nil {
		return -1, err
	}

	return resp.Volume, nil
}

// Status fetches the playback state via GET /status.
//
// Any failure collapses to the zero snapshot with Connected=false; the error
// is returned alongside for callers that log or surface it.
func (r *RadioService) Status(ctx context.Context) (models.Status, error) {
	var resp struct {
		Playing        bool   `json:"playing"`
		Volume         int    `json:"volume"`
		CurrentStation string `json:"current_station"`
		CurrentTrack   string `json:"current_track"`
	}

	if err := r.doGet(ctx, "/status", &resp); err != nil {
		return models.Status{}, err
	}

	return models.Status{
		Playing:   resp.Playing,
		Station:   resp.CurrentStation,
		Track:     resp.CurrentTrack,
		Volume:    resp.Volume,
		Connected: true,
	}, nil
}

// AddStation registers a station via POST /stations/{id}.
func (r *RadioService) AddStation(ctx context.Context, station models.Station) error {
	if err := station.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	payload := struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}{Name: station.Name, URL: station.URL}

	return r.doSend(ctx, http.MethodPost, fmt.Sprintf("/stations/%d", station.ID), payload)
}

// RemoveStation deletes a station via DELETE /stations/{id}.
func (r *RadioService) RemoveStation(ctx context.Context, stationID int) error {
	return r.doSend(ctx, http.MethodDelete, fmt.Sprintf("/stations/%d", stationID), nil)
}

// Reachable reports whether the server answered a status probe.
func (r *RadioService) Reachable(ctx context.Context) bool {
	_, err := r.Status(ctx)
	return err == nil
}

var _ Remote = (*RadioService)(nil)
