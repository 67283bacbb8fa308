package appointment

import (
	"testing"
	"time"

	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/models"
)

func TestCheckTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from     Status
		to       Status
		wantKind apperr.Kind
		wantErr  bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled},
		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled},
		{
			name: "pending cannot complete directly",
			from: StatusPending, to: StatusCompleted,
			wantErr: true, wantKind: apperr.KindConflict,
		},
		{
			name: "completed is terminal",
			from: StatusCompleted, to: StatusCancelled,
			wantErr: true, wantKind: apperr.KindConflict,
		},
		{
			name: "cancelled is terminal",
			from: StatusCancelled, to: StatusPending,
			wantErr: true, wantKind: apperr.KindConflict,
		},
		{
			name: "confirmed cannot revert to pending",
			from: StatusConfirmed, to: StatusPending,
			wantErr: true, wantKind: apperr.KindConflict,
		},
		{
			name: "unknown target status",
			from: StatusPending, to: Status("ARCHIVED"),
			wantErr: true, wantKind: apperr.KindValidation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckTransition(tt.from, tt.to)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("CheckTransition(%s, %s) = %v, want nil", tt.from, tt.to, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("CheckTransition(%s, %s) = nil, want error", tt.from, tt.to)
			}
			if !apperr.IsKind(err, tt.wantKind) {
				t.Errorf("error kind = %v, want %v", err, tt.wantKind)
			}
		})
	}
}

func TestTransitionStampsTimestamps(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPending)}
	if err := Transition(ap, StatusConfirmed, now); err != nil {
		t.Fatalf("Transition to confirmed: %v", err)
	}
	if ap.ConfirmedAt == nil || !ap.ConfirmedAt.Equal(now) {
		t.Errorf("ConfirmedAt = %v, want %v", ap.ConfirmedAt, now)
	}

	later := now.Add(time.Hour)
	if err := Transition(ap, StatusCompleted, later); err != nil {
		t.Fatalf("Transition to completed: %v", err)
	}
	if ap.CompletedAt == nil || !ap.CompletedAt.Equal(later) {
		t.Errorf("CompletedAt = %v, want %v", ap.CompletedAt, later)
	}
}

func TestCancelFromTerminalFails(t *testing.T) {
	t.Parallel()

	ap := &models.Appointment{Status: string(StatusCompleted)}
	err := Cancel(ap, time.Now())
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("Cancel on completed = %v, want conflict", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Errorf("status mutated to %s on rejected transition", ap.Status)
	}
}

func TestIsValidStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%s) = false, want true", s)
		}
	}
	if IsValidStatus(Status("SCHEDULED")) {
		t.Error("IsValidStatus(SCHEDULED) = true, want false")
	}
}
