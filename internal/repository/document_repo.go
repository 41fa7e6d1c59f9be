package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepo is the generic per-user document store. Collections are just
// names; documents are opaque JSON with an "id" field the backend guarantees.
type DocumentRepo struct {
	pool *pgxpool.Pool
}

func NewDocumentRepo(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

func (r *DocumentRepo) ListByCollection(ctx context.Context, uid, collection string) ([]map[string]any, error) {
	query := `SELECT id, data FROM user_documents
		WHERE user_id = $1 AND collection = $2
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, uid, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []map[string]any{}
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}

		doc := map[string]any{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("corrupt document %s/%s: %w", collection, id, err)
		}
		doc["id"] = id
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// Save creates the document when it has no id, otherwise upserts by id.
// The stored document always carries its id. Returns the document and
// whether it was newly created.
func (r *DocumentRepo) Save(ctx context.Context, uid, collection string, doc map[string]any) (map[string]any, bool, error) {
	id, _ := doc["id"].(string)
	created := id == ""
	if created {
		id = uuid.NewString()
		doc["id"] = id
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode document: %w", err)
	}

	query := `INSERT INTO user_documents (user_id, collection, id, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, collection, id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
		RETURNING (xmax = 0)`

	var inserted bool
	if err := r.pool.QueryRow(ctx, query, uid, collection, id, raw).Scan(&inserted); err != nil {
		return nil, false, err
	}

	return doc, inserted, nil
}

// Delete is idempotent: removing an absent document is not an error.
func (r *DocumentRepo) Delete(ctx context.Context, uid, collection, id string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM user_documents WHERE user_id = $1 AND collection = $2 AND id = $3`,
		uid, collection, id)
	return err
}
