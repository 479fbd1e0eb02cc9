package jobs

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"jobtrack/internal/config"
	"jobtrack/internal/domain"
	"jobtrack/internal/domain/models"
	"jobtrack/internal/repository/blob"
)

func newTestService(t *testing.T) (*jobService, *blob.MemoryStore) {
	t.Helper()
	store := blob.NewMemoryStore()
	svc := NewService(store, slog.New(slog.DiscardHandler)).(*jobService)
	return svc, store
}

func TestLoadEmptyAndCorrupt(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		slot []byte
	}{
		{name: "absent slot"},
		{name: "corrupt slot", slot: []byte(`{not json`)},
		{name: "null slot", slot: []byte(`null`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService(t)
			if tt.slot != nil {
				if err := store.Put(ctx, config.JobsSlot, tt.slot); err != nil {
					t.Fatal(err)
				}
			}

			records, err := svc.ListJobs(ctx)
			if err != nil {
				t.Fatalf("ListJobs: %v", err)
			}
			if len(records) != 0 {
				t.Errorf("got %d records, want 0", len(records))
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	records := []models.JobRecord{
		{
			ID:       1,
			Position: "Backend Engineer",
			Company:  "Initech",
			Status:   models.StatusApplied,
			Date:     "2024-03-01",
			Notes:    "phone screen scheduled",
			Documents: []models.JobDocument{
				{ID: 10, Name: "resume.pdf", MediaType: "application/pdf", Data: "JVBERi0="},
			},
		},
		{ID: 2, Position: "SRE", Company: "Globex", Status: models.StatusInterview, Documents: []models.JobDocument{}},
	}

	if err := svc.ReplaceAll(ctx, records); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	loaded, err := svc.ListJobs(ctx)
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if !reflect.DeepEqual(records, loaded) {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", records, loaded)
	}

	// Saving what was loaded changes nothing
	if err := svc.ReplaceAll(ctx, loaded); err != nil {
		t.Fatalf("second ReplaceAll: %v", err)
	}
	again, err := svc.ListJobs(ctx)
	if err != nil {
		t.Fatalf("second ListJobs: %v", err)
	}
	if !reflect.DeepEqual(loaded, again) {
		t.Errorf("idempotence broken:\nfirst  %+v\nsecond %+v", loaded, again)
	}
}

func TestReplaceAllRejectsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	err := svc.ReplaceAll(ctx, []models.JobRecord{
		{ID: 7, Position: "A", Company: "X"},
		{ID: 7, Position: "B", Company: "Y"},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	record, err := svc.CreateJob(ctx, &models.CreateJobRequest{
		Position: "Data Engineer",
		Company:  "Hooli",
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	if record.Status != models.StatusApplied {
		t.Errorf("default status: got %s, want %s", record.Status, models.StatusApplied)
	}
	if record.ID == 0 {
		t.Error("expected a nonzero id")
	}
	if record.Documents == nil {
		t.Error("documents should be an empty slice, not nil")
	}

	records, _ := svc.ListJobs(ctx)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestCreateJobValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	longNotes := make([]byte, config.MaxNotesLength+1)
	for i := range longNotes {
		longNotes[i] = 'x'
	}

	tests := []struct {
		name string
		req  models.CreateJobRequest
	}{
		{name: "missing position", req: models.CreateJobRequest{Company: "X"}},
		{name: "missing company", req: models.CreateJobRequest{Position: "Y"}},
		{name: "unknown status", req: models.CreateJobRequest{Position: "Y", Company: "X", Status: "Pending"}},
		{name: "bad date", req: models.CreateJobRequest{Position: "Y", Company: "X", Date: "03/01/2024"}},
		{name: "notes too long", req: models.CreateJobRequest{Position: "Y", Company: "X", Notes: string(longNotes)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateJob(ctx, &tt.req); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("got %v, want validation error", err)
			}
		})
	}
}

func TestFreshIDCollisionBumps(t *testing.T) {
	svc, _ := newTestService(t)
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	base := fixed.UnixMilli()
	records := []models.JobRecord{{ID: base}, {ID: base + 1}}

	if got := svc.freshID(records); got != base+2 {
		t.Errorf("got id %d, want %d", got, base+2)
	}
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	record, err := svc.CreateJob(ctx, &models.CreateJobRequest{Position: "A", Company: "B"})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.UpdateJob(ctx, record.ID, &models.UpdateJobRequest{
		Position: "A",
		Company:  "B",
		Status:   models.StatusInterview,
		Notes:    "onsite next week",
	})
	if err != nil {
		t.Fatalf("UpdateJob: %v", err)
	}
	if updated.Status != models.StatusInterview || updated.Notes != "onsite next week" {
		t.Errorf("update not applied: %+v", updated)
	}

	if _, err := svc.UpdateJob(ctx, 999, &models.UpdateJobRequest{
		Position: "A", Company: "B", Status: models.StatusApplied,
	}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want not found", err)
	}
}

func TestDeleteJobIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	record, err := svc.CreateJob(ctx, &models.CreateJobRequest{Position: "A", Company: "B"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteJob(ctx, record.ID); err != nil {
		t.Fatalf("DeleteJob: %v", err)
	}
	// Deleting again is a no-op
	if err := svc.DeleteJob(ctx, record.ID); err != nil {
		t.Fatalf("repeat DeleteJob: %v", err)
	}

	records, _ := svc.ListJobs(ctx)
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}
