package catalog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/parley/internal/match"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS entities (
	entity_id     TEXT PRIMARY KEY,
	kind          TEXT NOT NULL,
	name          TEXT NOT NULL,
	payload_json  TEXT,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entities_kind ON entities(kind);

CREATE TABLE IF NOT EXISTS turn_log (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	turn_id             TEXT NOT NULL,
	conversation_id     TEXT NOT NULL,
	user_text           TEXT,
	intent              TEXT NOT NULL,
	route               TEXT,
	query_json          TEXT,
	final_state         TEXT NOT NULL,
	reason              TEXT,
	confidence          REAL,
	mutations_json      TEXT,
	clarification_count INTEGER NOT NULL DEFAULT 0,
	created_at          TEXT NOT NULL
);
`
// #endregion schema

// #region store-struct
// Store keeps resolvable entities in SQLite, one row per entity with
// its domain payload as JSON.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// Open opens a SQLite database and runs migrations.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. audit).
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region put
// Put inserts or replaces an entity. A missing ID gets a fresh UUID; a
// zero CreatedAt gets the current time.
func (s *Store) Put(e Entity) (Entity, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO entities (entity_id, kind, name, payload_json, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(entity_id) DO UPDATE SET
		   kind = excluded.kind, name = excluded.name, payload_json = excluded.payload_json`,
		e.ID, e.Kind, e.Name, nullIfEmpty(e.PayloadJSON), e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entity{}, fmt.Errorf("put entity %s: %w", e.ID, err)
	}
	return e, nil
}
// #endregion put

// #region get
// Get retrieves an entity by ID.
func (s *Store) Get(id string) (Entity, error) {
	var e Entity
	var payload sql.NullString
	var createdStr string

	err := s.db.QueryRow(
		`SELECT entity_id, kind, name, payload_json, created_at FROM entities WHERE entity_id = ?`, id,
	).Scan(&e.ID, &e.Kind, &e.Name, &payload, &createdStr)
	if err != nil {
		return Entity{}, fmt.Errorf("get entity %s: %w", id, err)
	}
	if payload.Valid {
		e.PayloadJSON = payload.String
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return e, nil
}
// #endregion get

// #region list-kind
// ListKind returns all entities of a kind, name-ascending.
func (s *Store) ListKind(kind string) ([]Entity, error) {
	rows, err := s.db.Query(
		`SELECT entity_id, kind, name, payload_json, created_at
		 FROM entities WHERE kind = ? ORDER BY name ASC`, kind,
	)
	if err != nil {
		return nil, fmt.Errorf("list kind %s: %w", kind, err)
	}
	defer rows.Close()

	var out []Entity
	for rows.Next() {
		var e Entity
		var payload sql.NullString
		var createdStr string
		if err := rows.Scan(&e.ID, &e.Kind, &e.Name, &payload, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if payload.Valid {
			e.PayloadJSON = payload.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, e)
	}
	return out, rows.Err()
}
// #endregion list-kind

// #region searchable
// Searchable loads all entities of a kind into an in-memory fuzzy
// corpus keyed by name. The corpus is a snapshot; reload after writes.
func (s *Store) Searchable(kind string) (*match.Searchable[Entity], error) {
	entities, err := s.ListKind(kind)
	if err != nil {
		return nil, err
	}
	return match.NewSearchable(entities, func(e Entity) string { return e.Name }), nil
}
// #endregion searchable

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
