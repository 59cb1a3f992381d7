package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const answerEventsTable = "answer_events"

// AnswerEventData captures a single answered problem.
type AnswerEventData struct {
	SessionID     string
	GameType      string
	Level         int
	Question      string
	CorrectAnswer string
	ChosenAnswer  string
	Correct       bool
	ResponseMs    int64
}

// AnswerEvent is a stored AnswerEventData.
type AnswerEvent struct {
	ID int64
	AnswerEventData
	CreatedAt time.Time
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	GameType  string // empty = all game types
	SessionID string // empty = all sessions
	Limit     int    // max results (0 = unlimited)
}

// EventRepo provides append and query access to answer events.
type EventRepo interface {
	// AppendAnswer records an answered problem.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// RecentAnswers returns matching events, newest first.
	RecentAnswers(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error)

	// SessionCount returns the number of distinct sessions that answered
	// at least one problem of gameType (all types when empty).
	SessionCount(ctx context.Context, gameType string) (int, error)

	// DeleteAnswers removes the events of gameType (all when empty).
	DeleteAnswers(ctx context.Context, gameType string) error
}

type eventRepo struct {
	drv *entsql.Driver
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	correct := 0
	if data.Correct {
		correct = 1
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(answerEventsTable).
		Columns("session_id", "game_type", "level", "question", "correct_answer",
			"chosen_answer", "correct", "response_ms", "created_at").
		Values(data.SessionID, data.GameType, data.Level, data.Question, data.CorrectAnswer,
			data.ChosenAnswer, correct, data.ResponseMs, time.Now().UnixMilli()).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAnswers(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("id", "session_id", "game_type", "level", "question", "correct_answer",
			"chosen_answer", "correct", "response_ms", "created_at").
		From(entsql.Table(answerEventsTable)).
		OrderBy(entsql.Desc("id"))
	if opts.GameType != "" {
		sel.Where(entsql.EQ("game_type", opts.GameType))
	}
	if opts.SessionID != "" {
		sel.Where(entsql.EQ("session_id", opts.SessionID))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var events []AnswerEvent
	for rows.Next() {
		var (
			e         AnswerEvent
			correct   int64
			createdAt int64
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.GameType, &e.Level, &e.Question,
			&e.CorrectAnswer, &e.ChosenAnswer, &correct, &e.ResponseMs, &createdAt); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		e.Correct = correct != 0
		e.CreatedAt = time.UnixMilli(createdAt)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answer events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) SessionCount(ctx context.Context, gameType string) (int, error) {
	// The builder quotes aggregate arguments as identifiers, so the
	// DISTINCT count is written out by hand.
	query := `SELECT COUNT(DISTINCT session_id) FROM answer_events`
	args := []any{}
	if gameType != "" {
		query += ` WHERE game_type = ?`
		args = append(args, gameType)
	}

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("scan session count: %w", err)
		}
	}
	return n, rows.Err()
}

func (r *eventRepo) DeleteAnswers(ctx context.Context, gameType string) error {
	del := entsql.Dialect(dialect.SQLite).Delete(answerEventsTable)
	if gameType != "" {
		del.Where(entsql.EQ("game_type", gameType))
	}
	query, args := del.Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete answer events: %w", err)
	}
	return nil
}
