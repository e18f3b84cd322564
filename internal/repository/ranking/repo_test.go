package ranking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/edutrack/internal/model"
)

var rankingColumns = []string{
	"user_id", "period", "attendance_points", "message_points", "total_points",
	"period_start", "period_end", "last_updated",
}

func TestListByPeriod(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(&dbpg.DB{Master: db})

	start := time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY total_points DESC, last_updated ASC`)).
		WithArgs("weekly").
		WillReturnRows(sqlmock.NewRows(rankingColumns).
			AddRow("u1", "weekly", 30, 12, 42, start, end, end).
			AddRow("u2", "weekly", 10, 5, 15, start, end, end))

	entries, err := repo.ListByPeriod(context.Background(), model.PeriodWeekly)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "u1", entries[0].UserID)
	assert.Equal(t, 42, entries[0].TotalPoints)
	assert.Equal(t, model.PeriodWeekly, entries[1].Period)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM rankings`)).
		WithArgs("monthly").
		WillReturnError(errors.New("connection refused"))

	_, err = repo.ListByPeriod(context.Background(), model.PeriodMonthly)
	assert.ErrorContains(t, err, "failed to list rankings")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByPeriod_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(&dbpg.DB{Master: db})

	mock.ExpectQuery(regexp.QuoteMeta(`FROM rankings`)).
		WithArgs("daily").
		WillReturnRows(sqlmock.NewRows(rankingColumns))

	entries, err := repo.ListByPeriod(context.Background(), model.PeriodDaily)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
