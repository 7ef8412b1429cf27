package database_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/SscSPs/forex_widget/internal/core/domain"
	"github.com/SscSPs/forex_widget/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBackend(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		backend database.Backend
		dsn     string
		wantErr bool
	}{
		{name: "empty", url: "", backend: database.BackendMemory},
		{name: "blank", url: "   ", backend: database.BackendMemory},
		{name: "postgres", url: "postgres://u:p@localhost:5432/db", backend: database.BackendPostgres, dsn: "postgres://u:p@localhost:5432/db"},
		{name: "postgresql", url: "postgresql://localhost/db", backend: database.BackendPostgres, dsn: "postgresql://localhost/db"},
		{name: "sqlite path", url: "sqlite://data/leads.db", backend: database.BackendSQLite, dsn: "data/leads.db"},
		{name: "sqlite file uri", url: "file:leads.db?cache=shared", backend: database.BackendSQLite, dsn: "file:leads.db?cache=shared"},
		{name: "sqlite no path", url: "sqlite://", wantErr: true},
		{name: "unknown scheme", url: "mysql://secret@host/db", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, dsn, err := database.DetectBackend(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.NotContains(t, err.Error(), "secret")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.backend, backend)
			assert.Equal(t, tt.dsn, dsn)
		})
	}
}

func TestOpenStore_Memory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := database.OpenStore(context.Background(), "", logger)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, database.BackendMemory, store.Backend)
	assert.Nil(t, store.Ping)
	lead, err := store.Leads.CreateLead(context.Background(), domain.NewLead{City: "DEL", Product: domain.LeadProductCard, Currency: "USD", Amount: 500})
	require.NoError(t, err)
	assert.Equal(t, int64(1), lead.ID)
}

func TestOpenStore_SQLite(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "leads.db")

	store, err := database.OpenStore(context.Background(), "sqlite://"+path, logger)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, database.BackendSQLite, store.Backend)
	require.NotNil(t, store.Ping)
	require.NoError(t, store.Ping(context.Background()))
	first, err := store.Leads.CreateLead(context.Background(), domain.NewLead{City: "DEL", Product: domain.LeadProductCard, Currency: "USD", Amount: 500})
	require.NoError(t, err)
	second, err := store.Leads.CreateLead(context.Background(), domain.NewLead{City: "MUM", Product: domain.LeadProductNote, Currency: "EUR", Amount: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}
