// Package repositories provides the persistence layer for the station cache.
//
// The cache mirrors the data model of the wire protocol: the station list is a
// flat ordered snapshot replaced wholesale on every refresh, never merged.
// [StationRepository.ReplaceAll] performs the swap in one transaction so a
// concurrent reader never observes a half-replaced list.
package repositories
