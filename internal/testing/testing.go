// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/dkarlsson/radiodeck/internal/models"
)

// MockRemote is a configurable test double for [services.Remote]
type MockRemote struct {
	StationsFn  func(ctx context.Context) ([]models.Station, error)
	StatusFn    func(ctx context.Context) (models.Status, error)
	VolumeFn    func(ctx context.Context) (int, error)
	PlayErr     error
	StopErr     error
	PauseErr    error
	ResumeErr   error
	SetVolErr   error
	AddErr      error
	RemoveErr   error
	PlayedIDs   []int
	SentVolumes []int
}

func (m *MockRemote) Stations(ctx context.Context) ([]models.Station, error) {
	if m.StationsFn != nil {
		return m.StationsFn(ctx)
	}
	return []models.Station{}, nil
}

func (m *MockRemote) Play(ctx context.Context, stationID int) error {
	m.PlayedIDs = append(m.PlayedIDs, stationID)
	return m.PlayErr
}

func (m *MockRemote) Stop(ctx context.Context) error   { return m.StopErr }
func (m *MockRemote) Pause(ctx context.Context) error  { return m.PauseErr }
func (m *MockRemote) Resume(ctx context.Context) error { return m.ResumeErr }

func (m *MockRemote) SetVolume(ctx context.Context, volume int) error {
	m.SentVolumes = append(m.SentVolumes, models.ClampVolume(volume))
	return m.SetVolErr
}

func (m *MockRemote) Volume(ctx context.Context) (int, error) {
	if m.VolumeFn != nil {
		return m.VolumeFn(ctx)
	}
	return 50, nil
}

func (m *MockRemote) Status(ctx context.Context) (models.Status, error) {
	if m.StatusFn != nil {
		return m.StatusFn(ctx)
	}
	return models.Status{Connected: true}, nil
}

func (m *MockRemote) AddStation(ctx context.Context, station models.Station) error {
	return m.AddErr
}

func (m *MockRemote) RemoveStation(ctx context.Context, stationID int) error {
	return m.RemoveErr
}

func (m *MockRemote) Reachable(ctx context.Context) bool {
	_, err := m.Status(ctx)
	return err == nil
}

func (m *MockRemote) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading a response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

var _ io.ReadCloser = (*FCloser)(nil)

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
