package store

import (
	"sync"

	"github.com/google/uuid"

	"entropylab/internal/model"
)

// ReportStore keeps reports produced by the HTTP API.
type ReportStore struct {
	mu      sync.RWMutex
	reports map[string]model.Report
	order   []string
}

func NewReportStore() *ReportStore {
	return &ReportStore{reports: make(map[string]model.Report)}
}

// Add assigns a new id to r, stores it and returns the stored copy.
func (rs *ReportStore) Add(r model.Report) model.Report {
	r.ID = uuid.New().String()
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.reports[r.ID] = r
	rs.order = append(rs.order, r.ID)
	return r
}

func (rs *ReportStore) Get(id string) (model.Report, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	r, ok := rs.reports[id]
	return r, ok
}

// IDs lists stored report ids, oldest first.
func (rs *ReportStore) IDs() []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return append([]string(nil), rs.order...)
}
