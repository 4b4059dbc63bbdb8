package audit

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log
// Log writes turn records to the turn_log table. It shares the catalog
// store's database handle.
type Log struct {
	db *sql.DB
}

// NewLog wraps an open database. The turn_log table is created by the
// catalog store's migration.
func NewLog(db *sql.DB) *Log {
	return &Log{db: db}
}
// #endregion log

// #region record
// Record writes one turn record.
func (l *Log) Record(rec TurnRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := l.db.Exec(
		`INSERT INTO turn_log (turn_id, conversation_id, user_text, intent, route, query_json, final_state, reason, confidence, mutations_json, clarification_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.TurnID,
		rec.ConversationID,
		nullIfEmpty(rec.UserText),
		rec.Intent,
		nullIfEmpty(rec.Route),
		nullIfEmpty(rec.QueryJSON),
		rec.FinalState,
		nullIfEmpty(rec.Reason),
		rec.Confidence,
		nullIfEmpty(rec.MutationsJSON),
		rec.ClarificationCount,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record turn: %w", err)
	}
	return nil
}
// #endregion record

// #region recent
// Recent returns the most recent turn records, newest first.
func (l *Log) Recent(limit int) ([]TurnRecord, error) {
	rows, err := l.db.Query(
		`SELECT turn_id, conversation_id, user_text, intent, route, query_json, final_state, reason, confidence, mutations_json, clarification_count, created_at
		 FROM turn_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Conversation returns all turn records for one conversation in turn
// order.
func (l *Log) Conversation(conversationID string) ([]TurnRecord, error) {
	rows, err := l.db.Query(
		`SELECT turn_id, conversation_id, user_text, intent, route, query_json, final_state, reason, confidence, mutations_json, clarification_count, created_at
		 FROM turn_log WHERE conversation_id = ? ORDER BY id ASC`, conversationID,
	)
	if err != nil {
		return nil, fmt.Errorf("list conversation %s: %w", conversationID, err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]TurnRecord, error) {
	var out []TurnRecord
	for rows.Next() {
		var rec TurnRecord
		var userText, route, queryJSON, reason, mutations sql.NullString
		var createdStr string
		if err := rows.Scan(&rec.TurnID, &rec.ConversationID, &userText, &rec.Intent, &route, &queryJSON,
			&rec.FinalState, &reason, &rec.Confidence, &mutations, &rec.ClarificationCount, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.UserText = userText.String
		rec.Route = route.String
		rec.QueryJSON = queryJSON.String
		rec.Reason = reason.String
		rec.MutationsJSON = mutations.String
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, rec)
	}
	return out, rows.Err()
}
// #endregion recent

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
