package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/porquinho-server/internal/logging"
	"github.com/carson-networks/porquinho-server/internal/storage"
	"github.com/carson-networks/porquinho-server/internal/storage/sqlconfig"
)

// RecordService reads and writes monthly records across the remote and local
// tiers. Reads prefer the remote tier; writes go remote first and are
// mirrored locally.
type RecordService struct {
	storage *storage.Storage
}

func NewRecordService(store *storage.Storage) *RecordService {
	return &RecordService{storage: store}
}

// List returns every record ordered by month. An unreachable or empty remote
// tier is answered from the local one.
func (s *RecordService) List(ctx context.Context) ([]Record, Source, error) {
	logData := logging.GetLogData(ctx)

	if s.storage.HasRemote() {
		endTimer := logData.AddTiming("remoteListMs")
		rows, err := s.storage.Remote.List(ctx)
		endTimer()
		if err == nil && len(rows) > 0 {
			return recordsFromStorage(rows), SourceRemote, nil
		}
		if err != nil {
			logrus.WithError(err).Warn("RecordService.List.remoteFailed")
		}
	}

	endTimer := logData.AddTiming("localListMs")
	rows, err := s.storage.Local.List(ctx)
	endTimer()
	if err != nil {
		return nil, SourceLocal, fmt.Errorf("list local records: %w", err)
	}
	return recordsFromStorage(rows), SourceLocal, nil
}

// Get prefers the remote tier and falls back to the local one when the remote
// fails or does not hold the month. Unlike List, a month written locally
// during an outage stays readable here before it is synced.
func (s *RecordService) Get(ctx context.Context, month string) (Record, Source, error) {
	if s.storage.HasRemote() {
		row, err := s.storage.Remote.FindByMonth(ctx, month)
		if err == nil {
			return recordFromStorage(row), SourceRemote, nil
		}
		if !errors.Is(err, sqlconfig.ErrRecordNotFound) {
			logrus.WithError(err).WithField("month", month).Warn("RecordService.Get.remoteFailed")
		}
	}

	row, err := s.storage.Local.FindByMonth(ctx, month)
	if errors.Is(err, sqlconfig.ErrRecordNotFound) {
		return Record{}, SourceLocal, ErrRecordNotFound
	}
	if err != nil {
		return Record{}, SourceLocal, fmt.Errorf("find local record %s: %w", month, err)
	}
	return recordFromStorage(row), SourceLocal, nil
}

// Latest returns the most recent month, ok is false when there are no records.
func (s *RecordService) Latest(ctx context.Context) (Record, bool, Source, error) {
	records, source, err := s.List(ctx)
	if err != nil {
		return Record{}, false, source, err
	}
	if len(records) == 0 {
		return Record{}, false, source, nil
	}
	return records[len(records)-1], true, source, nil
}

// Save upserts the month. The returned source is remote only when the remote
// write succeeded; a failed remote write still lands locally.
func (s *RecordService) Save(ctx context.Context, record Record) (SaveResult, error) {
	if err := validateRecord(record); err != nil {
		return SaveResult{}, err
	}
	record.ID = record.Month

	upsert := &sqlconfig.RecordUpsert{
		Month:          record.Month,
		Income:         record.Income,
		Expenses:       record.Expenses,
		SavingsBalance: record.SavingsBalance,
	}
	logData := logging.GetLogData(ctx)
	logData.AddData("month", record.Month)

	source := SourceLocal
	if s.storage.HasRemote() {
		endTimer := logData.AddTiming("remoteUpsertMs")
		err := s.storage.Remote.Upsert(ctx, upsert)
		endTimer()
		if err == nil {
			source = SourceRemote
		} else {
			logrus.WithError(err).WithField("month", record.Month).Warn("RecordService.Save.remoteFailed")
		}
	}

	endTimer := logData.AddTiming("localUpsertMs")
	err := s.storage.Local.Upsert(ctx, upsert)
	endTimer()
	if err != nil {
		if source != SourceRemote {
			return SaveResult{}, fmt.Errorf("save local record %s: %w", record.Month, err)
		}
		logrus.WithError(err).WithField("month", record.Month).Warn("RecordService.Save.localMirrorFailed")
	}

	logData.AddData("source", source)
	return SaveResult{Record: record, Source: source}, nil
}

// Delete removes the month from both tiers. Deleting a missing month is not an error.
func (s *RecordService) Delete(ctx context.Context, month string) (Source, error) {
	if !ValidMonth(month) {
		return "", fmt.Errorf("%w: month %q is not YYYY-MM", ErrInvalidRecord, month)
	}

	source := SourceLocal
	if s.storage.HasRemote() {
		if err := s.storage.Remote.Delete(ctx, month); err == nil {
			source = SourceRemote
		} else {
			logrus.WithError(err).WithField("month", month).Warn("RecordService.Delete.remoteFailed")
		}
	}

	if err := s.storage.Local.Delete(ctx, month); err != nil {
		if source != SourceRemote {
			return "", fmt.Errorf("delete local record %s: %w", month, err)
		}
		logrus.WithError(err).WithField("month", month).Warn("RecordService.Delete.localMirrorFailed")
	}
	return source, nil
}

// Sync pushes every local record to the remote tier. Per-record failures are
// counted, not returned.
func (s *RecordService) Sync(ctx context.Context) (SyncResult, error) {
	if !s.storage.HasRemote() {
		return SyncResult{}, ErrRemoteUnavailable
	}

	rows, err := s.storage.Local.List(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("list local records: %w", err)
	}

	logData := logging.GetLogData(ctx)
	var result SyncResult
	for _, row := range rows {
		endTimer := logData.AddToExistingTiming("remoteSyncMs")
		err := s.storage.Remote.Upsert(ctx, &sqlconfig.RecordUpsert{
			Month:          row.Month,
			Income:         row.Income,
			Expenses:       row.Expenses,
			SavingsBalance: row.SavingsBalance,
		})
		endTimer()
		if err != nil {
			logrus.WithError(err).WithField("month", row.Month).Warn("RecordService.Sync.pushFailed")
			result.Failed++
			continue
		}
		result.Pushed++
	}

	logData.AddData("pushed", result.Pushed)
	logData.AddData("failed", result.Failed)
	logrus.WithFields(logrus.Fields{
		"pushed": result.Pushed,
		"failed": result.Failed,
	}).Info("RecordService.Sync.complete")
	return result, nil
}

func validateRecord(record Record) error {
	var problems []string
	if !ValidMonth(record.Month) {
		problems = append(problems, fmt.Sprintf("month %q is not YYYY-MM", record.Month))
	}
	problems = append(problems, amountProblems("income", record.Income)...)
	problems = append(problems, amountProblems("expenses", record.Expenses)...)
	problems = append(problems, amountProblems("savings balance", record.SavingsBalance)...)
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(problems, "; "))
	}
	return nil
}

func amountProblems(name string, amount decimal.Decimal) []string {
	var problems []string
	if amount.IsNegative() {
		problems = append(problems, name+" must not be negative")
	}
	if !amount.Equal(amount.Truncate(amountDecimals)) {
		problems = append(problems, fmt.Sprintf("%s must have at most %d decimal places", name, amountDecimals))
	}
	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		problems = append(problems, fmt.Sprintf("%s must be below %s", name, maxAmount.String()))
	}
	return problems
}

func recordFromStorage(row *sqlconfig.Record) Record {
	return Record{
		ID:             row.ID,
		Month:          row.Month,
		Income:         row.Income,
		Expenses:       row.Expenses,
		SavingsBalance: row.SavingsBalance,
		UpdatedAt:      row.UpdatedAt,
	}
}

func recordsFromStorage(rows []*sqlconfig.Record) []Record {
	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = recordFromStorage(row)
	}
	slices.SortFunc(records, func(a, b Record) int {
		return strings.Compare(a.Month, b.Month)
	})
	return records
}
