package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/testutil"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

func newCalendarService(t *testing.T) (CalendarService, int64) {
	t.Helper()

	db := testutil.NewTestDB(t)
	agencyID := testutil.SeedAgency(t, db, "North Agency", "north.example.com")
	svc := NewCalendarService(repository.NewCalendarEventRepository(db), repository.NewClientRepository(db))
	return svc, agencyID
}

func TestCalendarMonthBoundaries(t *testing.T) {
	svc, agencyID := newCalendarService(t)
	ctx := context.Background()

	dates := []string{"2026-01-31", "2026-02-01", "2026-02-28", "2026-03-01"}
	for _, d := range dates {
		_, err := svc.Create(ctx, agencyID, &transfer.CalendarEventCreation{Title: "post on " + d, Date: d})
		require.NoError(t, err)
	}

	events, err := svc.Month(ctx, agencyID, 2026, time.February)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "2026-02-01", events[0].Date)
	assert.Equal(t, "2026-02-28", events[1].Date)
}

func TestCalendarCreateValidation(t *testing.T) {
	svc, agencyID := newCalendarService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, agencyID, &transfer.CalendarEventCreation{Date: "2026-02-01"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(ctx, agencyID, &transfer.CalendarEventCreation{Title: "x", Date: "01/02/2026"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(ctx, agencyID, &transfer.CalendarEventCreation{Title: "x", Date: "2026-02-01", ClientID: 99})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCalendarSetStatus(t *testing.T) {
	svc, agencyID := newCalendarService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, agencyID, &transfer.CalendarEventCreation{Title: "launch", Date: "2026-02-10"})
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, agencyID, id, models.EventScheduled))

	events, err := svc.Month(ctx, agencyID, 2026, time.February)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventScheduled, events[0].Status)

	err = svc.SetStatus(ctx, agencyID, id, "Cancelled")
	assert.True(t, apperrors.IsValidation(err))

	err = svc.SetStatus(ctx, agencyID, 999, models.EventDraft)
	assert.True(t, apperrors.IsNotFound(err))
}
