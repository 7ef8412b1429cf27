package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/forex_widget/internal/core/domain"
	portsrepo "github.com/SscSPs/forex_widget/internal/core/ports/repositories"
)

// LeadRepository keeps leads in process memory. It is used when no database is configured.
type LeadRepository struct {
	mu     sync.Mutex
	leads  []domain.Lead
	nextID int64
	now    func() time.Time
}

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{nextID: 1, now: time.Now}
}

// Ensure LeadRepository implements the lead repository port
var _ portsrepo.LeadRepositoryFacade = (*LeadRepository)(nil)

// CreateLead assigns the next id and appends the lead under a single lock.
func (r *LeadRepository) CreateLead(_ context.Context, lead domain.NewLead) (*domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := domain.Lead{
		ID:        r.nextID,
		City:      lead.City,
		Product:   lead.Product,
		Currency:  lead.Currency,
		Amount:    lead.Amount,
		CreatedAt: r.now().UTC(),
	}
	r.nextID++
	r.leads = append(r.leads, created)
	return &created, nil
}
