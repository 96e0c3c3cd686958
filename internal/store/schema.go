package store

// Snapshot schema. Track holds the enriched track table, ArtistTrack the
// per-artist expansion, and Collaboration the deduplicated graph edges
// (artist_a < artist_b).
const createTables = `
CREATE TABLE IF NOT EXISTS Track (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  date TEXT NOT NULL,
  position INTEGER NOT NULL,
  song TEXT NOT NULL,
  artist TEXT NOT NULL,
  artist_clean TEXT,
  is_explicit INTEGER,
  is_collaboration INTEGER,
  album_type TEXT,
  total_tracks INTEGER,
  duration_ms INTEGER,
  duration_minutes REAL,
  duration_bucket TEXT,
  rank_group TEXT,
  popularity REAL
);

CREATE TABLE IF NOT EXISTS ArtistTrack (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  artist TEXT NOT NULL,
  date TEXT NOT NULL,
  position INTEGER NOT NULL,
  song TEXT NOT NULL,
  album_type TEXT,
  rank_group TEXT
);

CREATE TABLE IF NOT EXISTS Collaboration (
  artist_a TEXT NOT NULL,
  artist_b TEXT NOT NULL,
  PRIMARY KEY (artist_a, artist_b)
);

CREATE INDEX IF NOT EXISTS idx_track_date ON Track(date);
CREATE INDEX IF NOT EXISTS idx_artist_track_artist ON ArtistTrack(artist);
`
