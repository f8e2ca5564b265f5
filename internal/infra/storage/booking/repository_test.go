package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStopAfterBuild = errors.New("stop after build")

// queryRecorder перехватывает собранный SQL вместо похода в БД
type queryRecorder struct {
	query string
	args  []interface{}
}

func (r *queryRecorder) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	r.query = query
	r.args = args
	return nil, errStopAfterBuild
}

func (r *queryRecorder) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	r.query = query
	r.args = args
	return nil, errStopAfterBuild
}

func (r *queryRecorder) QueryRowContext(_ context.Context, query string, args ...interface{}) *sql.Row {
	r.query = query
	r.args = args
	return nil
}

// Списки отдаются в хронологическом порядке: по дате, внутри даты
// по началу слота. Порядок вставки значения не имеет.
func TestGetByUserID_OrdersChronologically(t *testing.T) {
	recorder := &queryRecorder{}
	repo := NewRepository(recorder)

	_, err := repo.GetByUserID(context.Background(), 42)
	require.ErrorIs(t, err, ErrExecQuery)

	assert.Contains(t, recorder.query, "ORDER BY booking_date ASC, slot_start ASC")
	assert.Contains(t, recorder.query, "user_id = $1")
	assert.Equal(t, []interface{}{int64(42)}, recorder.args)
}

func TestGetAll_OrdersChronologically(t *testing.T) {
	recorder := &queryRecorder{}
	repo := NewRepository(recorder)

	_, err := repo.GetAll(context.Background())
	require.ErrorIs(t, err, ErrExecQuery)

	assert.Contains(t, recorder.query, "ORDER BY booking_date ASC, slot_start ASC")
	assert.NotContains(t, recorder.query, "WHERE")
	assert.Empty(t, recorder.args)
}
