package service

import (
	"time"

	"github.com/carson-networks/porquinho-server/internal/advisor"
	"github.com/carson-networks/porquinho-server/internal/cache"
	"github.com/carson-networks/porquinho-server/internal/projection"
	"github.com/carson-networks/porquinho-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Record     *RecordService
	Dashboard  *DashboardService
	Projection *ProjectionService
	Advice     *AdviceService
}

type Options struct {
	Rates          projection.Rates
	Generator      advisor.Generator
	AdviceCache    cache.ICache
	AdviceCacheTTL time.Duration
	OwnerName      string
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, opts Options) *Service {
	records := NewRecordService(store)
	return &Service{
		Record:     records,
		Dashboard:  NewDashboardService(records),
		Projection: NewProjectionService(records, opts.Rates),
		Advice:     NewAdviceService(records, opts.Generator, opts.AdviceCache, opts.AdviceCacheTTL, opts.OwnerName),
	}
}
