package dbx

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "dbx.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE t (seq INTEGER PRIMARY KEY, v TEXT NOT NULL);`)
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM t`).Scan(&n))
	return n
}

func values(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query(`SELECT v FROM t ORDER BY seq`)
	require.NoError(t, err)
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		require.NoError(t, rows.Scan(&v))
		out = append(out, v)
	}
	require.NoError(t, rows.Err())
	return out
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('ok')`)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, countRows(t, db), "must commit on success")
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	db := setupDB(t)

	boom := errors.New("boom")
	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('fail')`)
		require.NoError(t, e)
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.Equal(t, 0, countRows(t, db), "must rollback when fn returns error")
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := setupDB(t)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		require.Equal(t, 0, countRows(t, db), "must rollback on panic")
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('panic')`)
		require.NoError(t, e)
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.Error(t, err, "begin should fail when DB is closed")
}

func TestReplaceAll_ReplacesContentInOrder(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	insert := `INSERT INTO t(seq, v) VALUES (?, ?)`

	require.NoError(t, ReplaceAll(ctx, db, "t", insert, [][]any{{0, "a"}, {1, "b"}, {2, "c"}}))
	require.Equal(t, []string{"a", "b", "c"}, values(t, db))

	require.NoError(t, ReplaceAll(ctx, db, "t", insert, [][]any{{0, "z"}}))
	require.Equal(t, []string{"z"}, values(t, db))

	require.NoError(t, ReplaceAll(ctx, db, "t", insert, nil))
	require.Equal(t, 0, countRows(t, db))
}

func TestReplaceAll_FailedInsertKeepsOldContent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	insert := `INSERT INTO t(seq, v) VALUES (?, ?)`

	require.NoError(t, ReplaceAll(ctx, db, "t", insert, [][]any{{0, "keep"}}))

	// v is NOT NULL, so the second row fails and the whole replace rolls back.
	err := ReplaceAll(ctx, db, "t", insert, [][]any{{0, "new"}, {1, nil}})
	require.Error(t, err)
	require.Equal(t, []string{"keep"}, values(t, db))
}
