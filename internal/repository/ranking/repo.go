package ranking

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/edutrack/internal/model"
)

// Repository reads the rankings table. Rows are written by the scoring job, never here.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new ranking repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ListByPeriod returns the entries of the latest window of period,
// highest score first and, on ties, the earliest updated first.
func (r *Repository) ListByPeriod(ctx context.Context, period model.Period) ([]model.RankingEntry, error) {
	query := `
		SELECT user_id, period, attendance_points, message_points, total_points,
		       period_start, period_end, last_updated
		FROM rankings
		WHERE period = $1
		  AND period_start = (SELECT MAX(period_start) FROM rankings WHERE period = $1)
		ORDER BY total_points DESC, last_updated ASC;
    `

	rows, err := r.db.QueryContext(ctx, query, string(period))
	if err != nil {
		return nil, fmt.Errorf("failed to list rankings: %w", err)
	}
	defer rows.Close()

	entries := make([]model.RankingEntry, 0)
	for rows.Next() {
		var e model.RankingEntry
		err := rows.Scan(
			&e.UserID, &e.Period, &e.AttendancePoints, &e.MessagePoints, &e.TotalPoints,
			&e.PeriodStart, &e.PeriodEnd, &e.LastUpdated,
		)
		if err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list rankings: %w", err)
	}

	return entries, nil
}
