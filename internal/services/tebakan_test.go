package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tebakangka/internal/models"
	"tebakangka/internal/store"
)

func TestSubmitRejectsDuplicateTriple(t *testing.T) {
	mem := store.NewMemory()
	svc := NewTebakanService(mem, mem)
	lombaID := seedLomba(t, mem, nil, "2d", 10)
	websiteID := uuid.New()

	first := &models.Tebakan{
		LombaID: lombaID, WebsiteID: websiteID,
		UseridWebsite: "alice", Number: "12",
	}
	require.NoError(t, svc.Submit(context.Background(), first))

	second := &models.Tebakan{
		LombaID: lombaID, WebsiteID: websiteID,
		UseridWebsite: "alice", Number: "99",
	}
	err := svc.Submit(context.Background(), second)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	// Same participant on a different source site is a new identity.
	third := &models.Tebakan{
		LombaID: lombaID, WebsiteID: uuid.New(),
		UseridWebsite: "alice", Number: "99",
	}
	assert.NoError(t, svc.Submit(context.Background(), third))
}

func TestSubmitRejectsSettledLomba(t *testing.T) {
	mem := store.NewMemory()
	svc := NewTebakanService(mem, mem)
	lombaID := seedLomba(t, mem, strptr("1234"), "2d", 10)

	err := svc.Submit(context.Background(), &models.Tebakan{
		LombaID: lombaID, WebsiteID: uuid.New(),
		UseridWebsite: "alice", Number: "34",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSubmitValidatesCandidates(t *testing.T) {
	mem := store.NewMemory()
	svc := NewTebakanService(mem, mem)
	lombaID := seedLomba(t, mem, nil, "3d", 10)

	tests := []struct {
		name   string
		number string
		ok     bool
	}{
		{"single candidate", "123", true},
		{"multiple candidates", "123-4567", true},
		{"non-digit candidate", "12a", false},
		{"candidate shorter than match length", "12", false},
		{"one short candidate among valid ones", "123-45", false},
		{"empty number", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Submit(context.Background(), &models.Tebakan{
				LombaID: lombaID, WebsiteID: uuid.New(),
				UseridWebsite: "user-" + tt.name, Number: tt.number,
			})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidState)
			}
		})
	}
}

func TestSubmitUnknownLomba(t *testing.T) {
	mem := store.NewMemory()
	svc := NewTebakanService(mem, mem)

	err := svc.Submit(context.Background(), &models.Tebakan{
		LombaID: uuid.New(), WebsiteID: uuid.New(),
		UseridWebsite: "alice", Number: "12",
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestViewNewestFirst(t *testing.T) {
	mem := store.NewMemory()
	svc := NewTebakanService(mem, mem)
	lombaID := seedLomba(t, mem, nil, "2d", 10)
	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	seedTebakan(t, mem, lombaID, "old", "11", base)
	seedTebakan(t, mem, lombaID, "new", "22", base.Add(time.Hour))
	seedTebakan(t, mem, lombaID, "mid", "33", base.Add(time.Minute))

	entries, err := svc.View(context.Background(), lombaID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "new", entries[0].UseridWebsite)
	assert.Equal(t, "mid", entries[1].UseridWebsite)
	assert.Equal(t, "old", entries[2].UseridWebsite)
}

func TestParticipants(t *testing.T) {
	mem := store.NewMemory()
	svc := NewTebakanService(mem, mem)
	lombaID := seedLomba(t, mem, nil, "2d", 10)

	seedTebakan(t, mem, lombaID, "alice", "11", time.Now())
	seedTebakan(t, mem, lombaID, "bob", "22", time.Now())
	seedTebakan(t, mem, seedLomba(t, mem, nil, "2d", 10), "other", "33", time.Now())

	ids, err := svc.Participants(context.Background(), lombaID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, ids)
}

func TestWinnerDataRequiresLomba(t *testing.T) {
	mem := store.NewMemory()
	svc := NewTebakanService(mem, mem)

	_, _, err := svc.WinnerData(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestWinnerDataArrivalOrder(t *testing.T) {
	mem := store.NewMemory()
	svc := NewTebakanService(mem, mem)
	lombaID := seedLomba(t, mem, nil, "2d", 10)
	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	websiteID := uuid.New()

	seedTebakan(t, mem, lombaID, "second", "22", base.Add(time.Minute))
	seedTebakan(t, mem, lombaID, "first", "11", base)
	require.NoError(t, mem.AddFakeUser(context.Background(), &models.FakeUser{
		UseridWebsite: "seed", WebsiteID: websiteID,
	}))

	entries, fakes, err := svc.WinnerData(context.Background(), lombaID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].UseridWebsite)
	assert.Equal(t, "second", entries[1].UseridWebsite)
	require.Len(t, fakes, 1)
	assert.Equal(t, "seed", fakes[0].UseridWebsite)
}
