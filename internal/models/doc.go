// Package models defines the data model shared by the remote client, the
// station cache and the UI.
//
// Both types are transient snapshots of server state: a [Status] is rebuilt
// fully on every poll and never merged with a prior one, and the station list
// is replaced wholesale whenever it is refetched.
package models
