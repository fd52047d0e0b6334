package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"freightdesk/apperr"
)

// column is a filter column written next to the JSONB doc.
type column struct {
	name  string
	value any
}

// pgDocs stores documents in a table shaped (id TEXT, <columns...>, doc JSONB).
type pgDocs[D any] struct {
	db     *sql.DB
	table  string
	entity string
}

func (p pgDocs[D]) insert(ctx context.Context, id string, doc *D, cols ...column) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", p.entity, err)
	}

	names := []string{"id", "doc"}
	args := []any{id, string(raw)}
	for _, c := range cols {
		names = append(names, c.name)
		args = append(args, c.value)
	}
	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		p.table, strings.Join(names, ", "), strings.Join(placeholders, ", "))
	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return p.wrap("insert", err)
	}
	return nil
}

func (p pgDocs[D]) get(ctx context.Context, id string) (*D, error) {
	var raw []byte
	err := p.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, p.table), id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound(p.entity, id)
	}
	if err != nil {
		return nil, p.wrap("get", err)
	}

	var doc D
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, apperr.IO("decode "+p.entity, err)
	}
	return &doc, nil
}

// find returns docs matching where (may be empty) ordered by orderBy.
func (p pgDocs[D]) find(ctx context.Context, where, orderBy string, args ...any) ([]D, error) {
	query := fmt.Sprintf(`SELECT doc FROM %s`, p.table)
	if where != "" {
		query += " WHERE " + where
	}
	if orderBy != "" {
		query += " ORDER BY " + orderBy
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, p.wrap("list", err)
	}
	defer rows.Close()

	var docs []D
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, p.wrap("scan", err)
		}
		var doc D
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, apperr.IO("decode "+p.entity, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, p.wrap("list", err)
	}
	return docs, nil
}

func (p pgDocs[D]) update(ctx context.Context, id string, doc *D, cols ...column) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", p.entity, err)
	}

	sets := []string{"doc = $1", "updated_at = now()"}
	args := []any{string(raw)}
	for _, c := range cols {
		args = append(args, c.value)
		sets = append(sets, fmt.Sprintf("%s = $%d", c.name, len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`, p.table, strings.Join(sets, ", "), len(args))
	res, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		return p.wrap("update", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperr.NotFound(p.entity, id)
	}
	return nil
}

func (p pgDocs[D]) upsert(ctx context.Context, id string, doc *D) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", p.entity, err)
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`, p.table)
	if _, err := p.db.ExecContext(ctx, query, id, string(raw)); err != nil {
		return p.wrap("save", err)
	}
	return nil
}

func (p pgDocs[D]) delete(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, p.table), id)
	if err != nil {
		return p.wrap("delete", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperr.NotFound(p.entity, id)
	}
	return nil
}

func (p pgDocs[D]) wrap(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return apperr.Conflict("%s already exists", p.entity)
	}
	return apperr.IO(op+" "+p.entity, err)
}
