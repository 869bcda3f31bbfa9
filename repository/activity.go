package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"group-analytics/models"
)

// ErrFetchFailed marks a failure to read the activity log. Callers must not run
// the analytics over a partial result when they see it.
var ErrFetchFailed = errors.New("activity fetch failed")

const importBatchSize = 200

// Filter narrows the records read from the store. Zero values mean "no filter".
// From and To are inclusive ISO dates.
type Filter struct {
	GroupName string
	From      string
	To        string
	Limit     int
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Fetch returns matching records ordered by activity date, most recent first.
func (r *ActivityRepository) Fetch(ctx context.Context, f Filter) ([]models.GroupActivityRecord, error) {
	query := r.db.WithContext(ctx).Model(&models.GroupActivityRecord{})

	if f.GroupName != "" {
		query = query.Where("group_name = ?", f.GroupName)
	}
	if f.From != "" {
		query = query.Where("activity_date >= ?", f.From)
	}
	if f.To != "" {
		query = query.Where("activity_date <= ?", f.To)
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	records := make([]models.GroupActivityRecord, 0)
	if err := query.Order("activity_date DESC").Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return records, nil
}

// Import stores records as new rows. Existing rows for the same group and day are
// kept; the log is append-only.
func (r *ActivityRepository) Import(ctx context.Context, records []models.GroupActivityRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	rows := make([]models.GroupActivityRecord, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		rows[i] = rec
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, importBatchSize).Error
	})
	if err != nil {
		return 0, fmt.Errorf("import %d records: %w", len(rows), err)
	}
	return len(rows), nil
}

// LatestPerGroup returns the most recent record of every group, ordered by group name.
func (r *ActivityRepository) LatestPerGroup(ctx context.Context) ([]models.GroupSnapshot, error) {
	records, err := r.Fetch(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	return LatestSnapshots(records), nil
}

// LatestSnapshots picks the first record seen per group. records must be ordered
// most recent first, as Fetch returns them.
func LatestSnapshots(records []models.GroupActivityRecord) []models.GroupSnapshot {
	seen := make(map[string]struct{})
	snapshots := make([]models.GroupSnapshot, 0)
	for _, rec := range records {
		if _, ok := seen[rec.GroupName]; ok {
			continue
		}
		seen[rec.GroupName] = struct{}{}
		snapshots = append(snapshots, models.GroupSnapshot{
			GroupName:    rec.GroupName,
			ActivityDate: rec.ActivityDate,
			Sentiment:    rec.Sentiment,
			Summary:      rec.Summary,
			Insights:     rec.Insights,
		})
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].GroupName < snapshots[j].GroupName
	})
	return snapshots
}
