// Package ui implements the interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI mirrors the physical remote it replaces: a station list on the
// left-hand side of the mental model, transport and volume state, and a
// now-playing line, all driven by a fixed-period status poll.
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. A
// tick message fires once per poll interval and issues the status fetch as a
// command, so network I/O never blocks rendering. Poll failures surface a
// single "connection lost" message and leave the displayed station/track text
// untouched; the next successful poll replaces the whole snapshot.
//
// All dependencies are injected through [NewModel]; there is no package-level
// state. Keyboard navigation uses vim-style bindings (j/k, enter, space,
// +/-, r, q) with contextual help via charmbracelet/bubbles/help.
package ui
