package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/porquinho-server/internal/advisor"
	"github.com/carson-networks/porquinho-server/internal/cache"
	"github.com/carson-networks/porquinho-server/internal/logging"
)

type Advice struct {
	Text string
	// Generated is false when Text is one of the fixed fallback messages.
	Generated bool
	Cached    bool
	Source    Source
}

type AdviceService struct {
	records   recordLister
	generator advisor.Generator
	cache     cache.ICache
	ttl       time.Duration
	ownerName string
}

// NewAdviceService accepts a nil generator, in which case every call answers
// with the not-configured message.
func NewAdviceService(
	records recordLister,
	generator advisor.Generator,
	adviceCache cache.ICache,
	ttl time.Duration,
	ownerName string,
) *AdviceService {
	return &AdviceService{
		records:   records,
		generator: generator,
		cache:     adviceCache,
		ttl:       ttl,
		ownerName: ownerName,
	}
}

// Advice only fails when records cannot be read. Generation problems are
// logged and answered with a fixed message.
func (s *AdviceService) Advice(ctx context.Context) (*Advice, error) {
	records, source, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.generator == nil {
		return &Advice{Text: advisor.MessageNotConfigured, Source: source}, nil
	}

	months := make([]advisor.MonthSummary, len(records))
	for i, r := range records {
		months[i] = advisor.MonthSummary{
			Month:          r.Month,
			Income:         r.Income,
			Expenses:       r.Expenses,
			SavingsBalance: r.SavingsBalance,
		}
	}
	prompt := advisor.BuildPrompt(s.ownerName, months)
	key := advisor.CacheKey(prompt)

	if s.cache != nil {
		text, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			logrus.WithError(err).Warn("AdviceService.Advice.cacheGetFailed")
		} else if ok {
			return &Advice{Text: text, Generated: true, Cached: true, Source: source}, nil
		}
	}

	logData := logging.GetLogData(ctx)
	endTimer := logData.AddTiming("generateMs")
	text, err := s.generator.Generate(ctx, prompt)
	endTimer()
	if err != nil {
		logrus.WithError(err).Error("AdviceService.Advice.generateFailed")
		return &Advice{Text: advisor.MessageUnavailable, Source: source}, nil
	}
	if text == "" {
		return &Advice{Text: advisor.MessageEmpty, Source: source}, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, s.ttl); err != nil {
			logrus.WithError(err).Warn("AdviceService.Advice.cacheSetFailed")
		}
	}
	return &Advice{Text: text, Generated: true, Source: source}, nil
}
