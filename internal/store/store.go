// Package store writes analysis snapshots to sqlite so downstream
// consumers can query the enriched tables with plain SQL.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"chart-market-tools/internal/dataset"
	"chart-market-tools/internal/graph"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(createTables); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// WriteSnapshot replaces the stored snapshot with the given tables and
// graph in a single transaction.
func (s *Store) WriteSnapshot(tracks []dataset.Track, artistRows []dataset.ArtistTrack, g *graph.Graph) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"Track", "ArtistTrack", "Collaboration"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := insertTracks(tx, tracks); err != nil {
		return err
	}
	if err := insertArtistRows(tx, artistRows); err != nil {
		return err
	}
	if err := insertEdges(tx, g); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func insertTracks(tx *sql.Tx, tracks []dataset.Track) error {
	stmt, err := tx.Prepare(`
	INSERT INTO Track (date, position, song, artist, artist_clean, is_explicit,
	  is_collaboration, album_type, total_tracks, duration_ms, duration_minutes,
	  duration_bucket, rank_group, popularity)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing track insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range tracks {
		_, err := stmt.Exec(t.Date.Format(time.DateOnly), t.Position, t.Song, t.Artist,
			t.ArtistClean, t.IsExplicit, t.IsCollaboration, t.AlbumType, t.TotalTracks,
			t.DurationMS, t.DurationMinutes, t.DurationBucket, t.RankGroup, t.Popularity)
		if err != nil {
			return fmt.Errorf("inserting track %q: %w", t.Song, err)
		}
	}
	return nil
}

func insertArtistRows(tx *sql.Tx, rows []dataset.ArtistTrack) error {
	stmt, err := tx.Prepare(`
	INSERT INTO ArtistTrack (artist, date, position, song, album_type, rank_group)
	VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing artist row insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(r.Artist, r.Date.Format(time.DateOnly), r.Position, r.Song, r.AlbumType, r.RankGroup)
		if err != nil {
			return fmt.Errorf("inserting artist row %q: %w", r.Artist, err)
		}
	}
	return nil
}

func insertEdges(tx *sql.Tx, g *graph.Graph) error {
	if g == nil {
		return nil
	}
	for _, edge := range g.Edges() {
		if _, err := tx.Exec("INSERT INTO Collaboration (artist_a, artist_b) VALUES (?, ?)", edge[0], edge[1]); err != nil {
			return fmt.Errorf("inserting collaboration %q - %q: %w", edge[0], edge[1], err)
		}
	}
	return nil
}

// TopArtists returns the limit most frequent artists from the stored
// snapshot, by appearance count descending then name.
func (s *Store) TopArtists(limit int) ([]ArtistPlayCount, error) {
	query := `
	SELECT artist, COUNT(id)
	FROM ArtistTrack
	GROUP BY artist
	ORDER BY COUNT(*) DESC, artist ASC
	LIMIT ?
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top artists: %w", err)
	}
	defer rows.Close()

	var results []ArtistPlayCount
	for rows.Next() {
		var apc ArtistPlayCount
		if err := rows.Scan(&apc.Artist, &apc.Count); err != nil {
			return nil, err
		}
		results = append(results, apc)
	}
	return results, rows.Err()
}

type ArtistPlayCount struct {
	Artist string
	Count  int64
}

// TrackCount returns the number of stored track rows.
func (s *Store) TrackCount() (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(id) FROM Track").Scan(&count)
	return count, err
}

// CollaborationCount returns the number of stored graph edges.
func (s *Store) CollaborationCount() (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM Collaboration").Scan(&count)
	return count, err
}
