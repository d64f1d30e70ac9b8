package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/jobboard/internal/domain"
)

func TestReportService_NewPostsLastSevenDays(t *testing.T) {
	_, mock, queries := newMockDB(t)
	svc := NewReportService(queries, newTestLogger())

	now := at(2024, 6, 12, 9, 0)
	start := at(2024, 6, 6, 0, 0)
	end := at(2024, 6, 13, 0, 0)

	mock.ExpectQuery("name: CountJobsByDay :many").
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"day", "total"}).
			AddRow(time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC), int64(2)).
			AddRow(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), int64(3)))
	mock.ExpectQuery("name: CountJobsByCategory :many").
		WillReturnRows(sqlmock.NewRows([]string{"name", "total"}).
			AddRow("software engineering", int64(4)).
			AddRow("", int64(1)))
	mock.ExpectQuery("name: CountJobsBySpecialization :many").
		WillReturnRows(sqlmock.NewRows([]string{"name", "total"}).AddRow("", int64(5)))

	report, err := svc.NewPosts(context.Background(), domain.ReportRange7Days, 0, now)
	require.NoError(t, err)

	assert.Equal(t, domain.GranularityDay, report.Granularity)
	assert.Equal(t, int64(5), report.Total)
	assert.True(t, start.Equal(report.StartDate))
	assert.True(t, at(2024, 6, 12, 0, 0).Equal(report.EndDate))

	require.Len(t, report.Bar, 7)
	assert.Equal(t, domain.CountBucket{Label: "2024-06-06", Count: 0}, report.Bar[0])
	assert.Equal(t, domain.CountBucket{Label: "2024-06-07", Count: 2}, report.Bar[1])
	assert.Equal(t, domain.CountBucket{Label: "2024-06-12", Count: 3}, report.Bar[6])

	assert.Equal(t, []domain.CategorySlice{
		{Name: "Software Engineering", Value: 4},
		{Name: "Uncategorized", Value: 1},
	}, report.PieCategories)
	assert.Equal(t, []domain.CategorySlice{{Name: "Unspecified", Value: 5}}, report.PieSpecializations)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportService_NewPostsMonthlyBuckets(t *testing.T) {
	_, mock, queries := newMockDB(t)
	svc := NewReportService(queries, newTestLogger())

	now := at(2024, 6, 12, 9, 0)

	mock.ExpectQuery("name: CountJobsByDay :many").
		WillReturnRows(sqlmock.NewRows([]string{"day", "total"}).
			AddRow(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), int64(1)).
			AddRow(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), int64(2)).
			AddRow(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), int64(4)))
	mock.ExpectQuery("name: CountJobsByCategory :many").WillReturnRows(sqlmock.NewRows([]string{"name", "total"}))
	mock.ExpectQuery("name: CountJobsBySpecialization :many").WillReturnRows(sqlmock.NewRows([]string{"name", "total"}))

	report, err := svc.NewPosts(context.Background(), domain.ReportRange6Months, 0, now)
	require.NoError(t, err)

	require.Len(t, report.Bar, 6)
	assert.Equal(t, "2024-01", report.Bar[0].Label)
	assert.Equal(t, domain.CountBucket{Label: "2024-03", Count: 3}, report.Bar[2])
	assert.Equal(t, domain.CountBucket{Label: "2024-06", Count: 4}, report.Bar[5])
	assert.Empty(t, report.PieCategories)
	assert.NotNil(t, report.PieCategories)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportService_InvalidRange(t *testing.T) {
	_, mock, queries := newMockDB(t)
	svc := NewReportService(queries, newTestLogger())

	_, err := svc.NewPosts(context.Background(), domain.ReportRange("2w"), 0, time.Now())
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))

	_, err = svc.NewPosts(context.Background(), domain.ReportRangeYear, 1999, time.Now())
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}
