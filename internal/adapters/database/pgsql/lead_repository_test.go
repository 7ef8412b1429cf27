package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/forex_widget/internal/apperrors"
	"github.com/SscSPs/forex_widget/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	id        int64
	createdAt time.Time
	err       error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.id
	*(dest[1].(*time.Time)) = r.createdAt
	return nil
}

type fakeQuerier struct {
	row   fakeRow
	query string
	args  []any
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.query = sql
	q.args = args
	return q.row
}

func TestPgxLeadRepository_CreateLead(t *testing.T) {
	created := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	q := &fakeQuerier{row: fakeRow{id: 42, createdAt: created}}
	repo := NewPgxLeadRepository(q)

	lead, err := repo.CreateLead(context.Background(), domain.NewLead{
		City: "DEL", Product: domain.LeadProductCard, Currency: "USD", Amount: 500,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), lead.ID)
	assert.Equal(t, created, lead.CreatedAt)
	assert.Nil(t, lead.ConvertedAmount)
	assert.Contains(t, q.query, "INSERT INTO leads")
	assert.Equal(t, []any{"DEL", "card", "USD", int64(500)}, q.args)
}

func TestPgxLeadRepository_CreateLead_Error(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: errors.New("connection reset")}}
	repo := NewPgxLeadRepository(q)

	lead, err := repo.CreateLead(context.Background(), domain.NewLead{City: "DEL", Product: domain.LeadProductNote, Currency: "EUR"})
	require.Error(t, err)
	assert.Nil(t, lead)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
}
