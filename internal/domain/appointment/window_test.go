package appointment

import (
	"math/rand"
	"testing"
	"time"

	"github.com/barberia-app/barberia-api/internal/apperr"
)

func TestWindowOverlaps(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a    Window
		b    Window
		want bool
	}{
		{
			name: "partial overlap",
			a:    NewWindow(base, 30),                    // 10:00-10:30
			b:    NewWindow(base.Add(15*time.Minute), 30), // 10:15-10:45
			want: true,
		},
		{
			name: "back to back is free",
			a:    NewWindow(base, 30),                    // 10:00-10:30
			b:    NewWindow(base.Add(30*time.Minute), 30), // 10:30-11:00
			want: false,
		},
		{
			name: "identical windows",
			a:    NewWindow(base, 30),
			b:    NewWindow(base, 30),
			want: true,
		},
		{
			name: "containment",
			a:    NewWindow(base, 120),
			b:    NewWindow(base.Add(30*time.Minute), 15),
			want: true,
		},
		{
			name: "disjoint",
			a:    NewWindow(base, 30),
			b:    NewWindow(base.Add(2*time.Hour), 30),
			want: false,
		},
		{
			name: "touching at start",
			a:    NewWindow(base.Add(-30*time.Minute), 30), // 09:30-10:00
			b:    NewWindow(base, 30),                      // 10:00-10:30
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindowOverlapsRandomized(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		a := NewWindow(base.Add(time.Duration(rng.Intn(1440))*time.Minute), 15+rng.Intn(120))
		b := NewWindow(base.Add(time.Duration(rng.Intn(1440))*time.Minute), 15+rng.Intn(120))

		want := a.Start.Before(b.End) && b.Start.Before(a.End)
		if got := a.Overlaps(b); got != want {
			t.Fatalf("Overlaps(%v, %v) = %v, want %v", a, b, got, want)
		}
	}
}

func TestValidateDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		minutes int
		wantErr bool
	}{
		{15, false},
		{480, false},
		{60, false},
		{14, true},
		{481, true},
		{0, true},
		{-30, true},
	}

	for _, tt := range tests {
		err := ValidateDuration(tt.minutes)
		if tt.wantErr && !apperr.IsKind(err, apperr.KindValidation) {
			t.Errorf("ValidateDuration(%d) = %v, want validation error", tt.minutes, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("ValidateDuration(%d) = %v, want nil", tt.minutes, err)
		}
	}
}

func TestValidateNotInPast(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if err := ValidateNotInPast(now.Add(time.Hour), now); err != nil {
		t.Errorf("future start rejected: %v", err)
	}
	if err := ValidateNotInPast(now, now); err != nil {
		t.Errorf("start exactly now rejected: %v", err)
	}
	if err := ValidateNotInPast(now.Add(-time.Minute), now); !apperr.IsKind(err, apperr.KindConflict) {
		t.Errorf("past start = %v, want conflict", err)
	}
}
