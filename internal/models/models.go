package models

import "fmt"

// Station is a named, identified stream source exposed by the radio server.
type Station struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Validate checks that the station carries the fields required to play it.
func (s Station) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("station %d has no name", s.ID)
	}
	if s.URL == "" {
		return fmt.Errorf("station %q has no stream URL", s.Name)
	}
	return nil
}

// Status is the server-reported playback state.
//
// Connected reports whether the snapshot came from a successful fetch; a
// failed fetch yields the zero Status with Connected=false and callers must
// not display its other fields.
type Status struct {
	Playing   bool   `json:"playing"`
	Station   string `json:"current_station"`
	Track     string `json:"current_track"`
	Volume    int    `json:"volume"`
	Connected bool   `json:"-"`
}

// NowPlaying formats the station and track for display, omitting whichever is empty.
func (s Status) NowPlaying() string {
	switch {
	case s.Station == "" && s.Track == "":
		return ""
	case s.Track == "":
		return s.Station
	case s.Station == "":
		return s.Track
	default:
		return fmt.Sprintf("%s • %s", s.Station, s.Track)
	}
}

// ClampVolume bounds v to the valid volume range [0,100].
//
// Applied before any volume value is transmitted to the server.
func ClampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
