package bookmarks

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tourplanner/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE bookmarks (
  range_start TEXT NOT NULL,
  range_end   TEXT NOT NULL,
  position    INTEGER NOT NULL,
  id          TEXT NOT NULL,
  type        TEXT NOT NULL,
  body        BLOB NOT NULL,
  PRIMARY KEY (range_start, range_end, position)
);`)
	require.NoError(t, err)
	return db
}

func TestReplaceAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	recs := []models.BookmarkRecord{
		{ID: "b2", Type: models.BookmarkMonument, Item: json.RawMessage(`{"name":"Volubilis"}`)},
		{ID: "b1", Type: models.BookmarkBroker, Item: json.RawMessage(`{"name":"Change Atlas"}`)},
	}
	require.NoError(t, r.Replace(ctx, "2024/01/01", "2024/01/03", recs))

	got, err := r.Get(ctx, "2024/01/01", "2024/01/03")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b2", got[0].ID, "order is kept")
	assert.Equal(t, models.BookmarkBroker, got[1].Type)
	assert.JSONEq(t, `{"name":"Change Atlas"}`, string(got[1].Item))

	require.NoError(t, r.Replace(ctx, "2024/01/01", "2024/01/03", recs[:1]))
	got, err = r.Get(ctx, "2024/01/01", "2024/01/03")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGet_OtherRangeIsEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Replace(ctx, "2024/01/01", "2024/01/03", []models.BookmarkRecord{{ID: "x", Type: models.BookmarkHotel}}))

	got, err := r.Get(ctx, "2024/02/01", "2024/02/03")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = r.Get(ctx, "2024/01/01", "2024/01/03")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "null", string(got[0].Item))

	require.NoError(t, r.Clear(ctx))
	got, err = r.Get(ctx, "2024/01/01", "2024/01/03")
	require.NoError(t, err)
	assert.Nil(t, got)
}
