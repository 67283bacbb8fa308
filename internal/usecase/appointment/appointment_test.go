package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/barberia-app/barberia-api/internal/access"
	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/calendar"
	domain "github.com/barberia-app/barberia-api/internal/domain/appointment"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/notify"
)

// fakeRepo keeps everything in memory and mirrors the transactional
// conflict contract of the database implementation: inserting or moving
// a window that overlaps a live appointment of the same barber fails
// with a conflict.
type fakeRepo struct {
	barbers      map[uuid.UUID]*models.Barber
	clients      map[uuid.UUID]*models.Client
	orgs         map[uuid.UUID]*models.Organization
	appointments map[uuid.UUID]*models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:      make(map[uuid.UUID]*models.Barber),
		clients:      make(map[uuid.UUID]*models.Client),
		orgs:         make(map[uuid.UUID]*models.Organization),
		appointments: make(map[uuid.UUID]*models.Appointment),
	}
}

func (r *fakeRepo) GetBarberByID(_ context.Context, id uuid.UUID) (*models.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, apperr.NotFound("barber not found")
	}
	return b, nil
}

func (r *fakeRepo) GetBarberByUserID(_ context.Context, userID uuid.UUID) (*models.Barber, error) {
	for _, b := range r.barbers {
		if b.UserID == userID {
			return b, nil
		}
	}
	return nil, apperr.NotFound("barber not found")
}

func (r *fakeRepo) GetClientByID(_ context.Context, id uuid.UUID) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, apperr.NotFound("client not found")
	}
	return c, nil
}

func (r *fakeRepo) GetClientByUserID(_ context.Context, userID uuid.UUID) (*models.Client, error) {
	for _, c := range r.clients {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, apperr.NotFound("client not found")
}

func (r *fakeRepo) GetOrganizationByID(_ context.Context, id uuid.UUID) (*models.Organization, error) {
	o, ok := r.orgs[id]
	if !ok {
		return nil, apperr.NotFound("organization not found")
	}
	return o, nil
}

func (r *fakeRepo) GetOrganizationByAdminID(_ context.Context, adminID uuid.UUID) (*models.Organization, error) {
	for _, o := range r.orgs {
		if o.AdminID == adminID {
			return o, nil
		}
	}
	return nil, apperr.NotFound("organization not found")
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, apperr.NotFound("appointment not found")
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) hasConflict(ap *models.Appointment) bool {
	win := domain.NewWindow(ap.AppointmentDate, ap.Duration)
	for _, other := range r.appointments {
		if other.ID == ap.ID || other.BarberID != ap.BarberID {
			continue
		}
		if other.Status == string(domain.StatusCancelled) {
			continue
		}
		if win.Overlaps(domain.NewWindow(other.AppointmentDate, other.Duration)) {
			return true
		}
	}
	return false
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.hasConflict(ap) {
		return apperr.Conflict("the barber already has an appointment in that time slot")
	}
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) RescheduleAppointment(_ context.Context, ap *models.Appointment) error {
	if r.hasConflict(ap) {
		return apperr.Conflict("the barber already has an appointment in that time slot")
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uuid.UUID) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if filter.OrganizationID != uuid.Nil && ap.OrganizationID != filter.OrganizationID {
			continue
		}
		if filter.BarberID != uuid.Nil && ap.BarberID != filter.BarberID {
			continue
		}
		if filter.ClientID != uuid.Nil && ap.ClientID != filter.ClientID {
			continue
		}
		if filter.Status != "" && ap.Status != string(filter.Status) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) SetCalendarEvent(_ context.Context, id uuid.UUID, eventID *string) error {
	if ap, ok := r.appointments[id]; ok {
		ap.CalendarEventID = eventID
	}
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeEmitter records enqueued events synchronously.
type fakeEmitter struct {
	events []notify.Event
}

func (e *fakeEmitter) Enqueue(ev notify.Event) {
	e.events = append(e.events, ev)
}

func (e *fakeEmitter) byType(typ string) []notify.Event {
	var out []notify.Event
	for _, ev := range e.events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

// fixture wires a repo with one organization, one barber, and two
// clients.
type fixture struct {
	repo    *fakeRepo
	emitter *fakeEmitter

	adminID uuid.UUID
	org     *models.Organization
	barber  *models.Barber
	client  *models.Client
	client2 *models.Client
}

func newFixture() *fixture {
	f := &fixture{repo: newFakeRepo(), emitter: &fakeEmitter{}}

	f.adminID = uuid.New()
	f.org = &models.Organization{ID: uuid.New(), AdminID: f.adminID, Name: "Downtown Cuts"}
	f.repo.orgs[f.org.ID] = f.org

	f.barber = &models.Barber{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		OrganizationID: f.org.ID,
	}
	f.repo.barbers[f.barber.ID] = f.barber

	f.client = &models.Client{ID: uuid.New(), UserID: uuid.New()}
	f.client2 = &models.Client{ID: uuid.New(), UserID: uuid.New()}
	f.repo.clients[f.client.ID] = f.client
	f.repo.clients[f.client2.ID] = f.client2

	return f
}

func (f *fixture) clientActor() access.Actor {
	return access.Actor{UserID: f.client.UserID, Role: models.RoleClient}
}

func (f *fixture) barberActor() access.Actor {
	return access.Actor{UserID: f.barber.UserID, Role: models.RoleBarber}
}

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newCreateUC(f *fixture) *CreateAppointment {
	return NewCreateAppointment(f.repo, f.emitter, calendar.Disabled{}, zap.NewNop()).
		WithClock(clock)
}

func TestCreateAppointment(t *testing.T) {
	t.Parallel()

	f := newFixture()
	uc := newCreateUC(f)

	ap, err := uc.Execute(context.Background(), f.clientActor(), CreateAppointmentInput{
		BarberID:        f.barber.ID,
		ClientID:        f.client.ID,
		AppointmentDate: fixedNow.Add(24 * time.Hour),
		Duration:        30,
		Notes:           "fade",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if ap.Status != string(domain.StatusPending) {
		t.Errorf("status = %s, want PENDING", ap.Status)
	}
	if ap.OrganizationID != f.org.ID {
		t.Errorf("organization = %s, want %s", ap.OrganizationID, f.org.ID)
	}

	created := f.emitter.byType(models.NotificationAppointmentCreated)
	if len(created) != 2 {
		t.Fatalf("created notifications = %d, want 2", len(created))
	}
	recipients := map[uuid.UUID]bool{created[0].UserID: true, created[1].UserID: true}
	if !recipients[f.barber.UserID] || !recipients[f.client.UserID] {
		t.Errorf("notification recipients = %v, want barber and client users", recipients)
	}
}

func TestCreateAppointmentConflicts(t *testing.T) {
	t.Parallel()

	f := newFixture()
	uc := newCreateUC(f)
	start := fixedNow.Add(24 * time.Hour)

	book := func(clientID uuid.UUID, actor access.Actor, offset time.Duration) error {
		_, err := uc.Execute(context.Background(), actor, CreateAppointmentInput{
			BarberID:        f.barber.ID,
			ClientID:        clientID,
			AppointmentDate: start.Add(offset),
			Duration:        30,
		})
		return err
	}

	if err := book(f.client.ID, f.clientActor(), 0); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	actor2 := access.Actor{UserID: f.client2.UserID, Role: models.RoleClient}

	// 15 minutes into a live 30-minute slot.
	err := book(f.client2.ID, actor2, 15*time.Minute)
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("overlapping booking = %v, want conflict", err)
	}

	// Back to back is fine.
	if err := book(f.client2.ID, actor2, 30*time.Minute); err != nil {
		t.Fatalf("adjacent booking: %v", err)
	}
}

func TestCreateAppointmentOverCancelledSlot(t *testing.T) {
	t.Parallel()

	f := newFixture()
	uc := newCreateUC(f)
	start := fixedNow.Add(24 * time.Hour)

	first, err := uc.Execute(context.Background(), f.clientActor(), CreateAppointmentInput{
		BarberID:        f.barber.ID,
		ClientID:        f.client.ID,
		AppointmentDate: start,
		Duration:        30,
	})
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}

	cancelUC := NewCancelAppointment(f.repo, f.emitter, calendar.Disabled{}, zap.NewNop()).
		WithClock(clock)
	if _, err := cancelUC.Execute(context.Background(), f.clientActor(), first.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// The freed window is bookable again.
	actor2 := access.Actor{UserID: f.client2.UserID, Role: models.RoleClient}
	if _, err := uc.Execute(context.Background(), actor2, CreateAppointmentInput{
		BarberID:        f.barber.ID,
		ClientID:        f.client2.ID,
		AppointmentDate: start,
		Duration:        30,
	}); err != nil {
		t.Fatalf("rebooking cancelled slot: %v", err)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	t.Parallel()

	f := newFixture()
	uc := newCreateUC(f)

	tests := []struct {
		name     string
		in       CreateAppointmentInput
		actor    access.Actor
		wantKind apperr.Kind
	}{
		{
			name: "duration below minimum",
			in: CreateAppointmentInput{
				BarberID:        f.barber.ID,
				ClientID:        f.client.ID,
				AppointmentDate: fixedNow.Add(24 * time.Hour),
				Duration:        10,
			},
			actor:    f.clientActor(),
			wantKind: apperr.KindValidation,
		},
		{
			name: "start in the past",
			in: CreateAppointmentInput{
				BarberID:        f.barber.ID,
				ClientID:        f.client.ID,
				AppointmentDate: fixedNow.Add(-time.Hour),
				Duration:        30,
			},
			actor:    f.clientActor(),
			wantKind: apperr.KindConflict,
		},
		{
			name: "booking for someone else",
			in: CreateAppointmentInput{
				BarberID:        f.barber.ID,
				ClientID:        f.client2.ID,
				AppointmentDate: fixedNow.Add(24 * time.Hour),
				Duration:        30,
			},
			actor:    f.clientActor(),
			wantKind: apperr.KindForbidden,
		},
		{
			name: "unknown barber",
			in: CreateAppointmentInput{
				BarberID:        uuid.New(),
				ClientID:        f.client.ID,
				AppointmentDate: fixedNow.Add(24 * time.Hour),
				Duration:        30,
			},
			actor:    f.clientActor(),
			wantKind: apperr.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.actor, tt.in)
			if !apperr.IsKind(err, tt.wantKind) {
				t.Fatalf("Execute = %v, want kind %v", err, tt.wantKind)
			}
		})
	}
}

func TestListAppointmentsScopeNarrowing(t *testing.T) {
	t.Parallel()

	f := newFixture()
	createUC := newCreateUC(f)
	start := fixedNow.Add(24 * time.Hour)

	mine, err := createUC.Execute(context.Background(), f.clientActor(), CreateAppointmentInput{
		BarberID:        f.barber.ID,
		ClientID:        f.client.ID,
		AppointmentDate: start,
		Duration:        30,
	})
	if err != nil {
		t.Fatalf("booking for client: %v", err)
	}

	actor2 := access.Actor{UserID: f.client2.UserID, Role: models.RoleClient}
	if _, err := createUC.Execute(context.Background(), actor2, CreateAppointmentInput{
		BarberID:        f.barber.ID,
		ClientID:        f.client2.ID,
		AppointmentDate: start.Add(time.Hour),
		Duration:        30,
	}); err != nil {
		t.Fatalf("booking for second client: %v", err)
	}

	listUC := NewListAppointments(f.repo)

	// A client sees only its own, regardless of the supplied filter.
	got, err := listUC.Execute(context.Background(), f.clientActor(), ListAppointmentsInput{
		ClientID: f.client2.ID,
	})
	if err != nil {
		t.Fatalf("client list: %v", err)
	}
	if len(got) != 1 || got[0].ID != mine.ID {
		t.Errorf("client sees %d appointments, want only its own", len(got))
	}

	// A barber sees its whole agenda.
	got, err = listUC.Execute(context.Background(), f.barberActor(), ListAppointmentsInput{})
	if err != nil {
		t.Fatalf("barber list: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("barber sees %d appointments, want 2", len(got))
	}

	// The organization admin sees everything in its organization.
	got, err = listUC.Execute(context.Background(),
		access.Actor{UserID: f.adminID, Role: models.RoleAdmin}, ListAppointmentsInput{})
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("admin sees %d appointments, want 2", len(got))
	}

	// Status filter must name a real status.
	if _, err := listUC.Execute(context.Background(), f.clientActor(), ListAppointmentsInput{
		Status: "SCHEDULED",
	}); !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("bad status filter = %v, want validation error", err)
	}
}

func TestUpdateAppointmentTransitions(t *testing.T) {
	t.Parallel()

	f := newFixture()
	createUC := newCreateUC(f)
	updateUC := NewUpdateAppointment(f.repo, f.emitter, calendar.Disabled{}, zap.NewNop()).
		WithClock(clock)

	ap, err := createUC.Execute(context.Background(), f.clientActor(), CreateAppointmentInput{
		BarberID:        f.barber.ID,
		ClientID:        f.client.ID,
		AppointmentDate: fixedNow.Add(24 * time.Hour),
		Duration:        30,
	})
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	confirmed := string(domain.StatusConfirmed)
	got, err := updateUC.Execute(context.Background(), f.barberActor(), ap.ID,
		UpdateAppointmentInput{Status: &confirmed})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if got.Status != confirmed || got.ConfirmedAt == nil {
		t.Errorf("status = %s, ConfirmedAt = %v; want confirmed and stamped", got.Status, got.ConfirmedAt)
	}

	// Confirmation notifies the client only.
	events := f.emitter.byType(models.NotificationAppointmentConfirmed)
	if len(events) != 1 || events[0].UserID != f.client.UserID {
		t.Errorf("confirmed notifications = %+v, want one to the client", events)
	}

	completed := string(domain.StatusCompleted)
	if _, err := updateUC.Execute(context.Background(), f.barberActor(), got.ID,
		UpdateAppointmentInput{Status: &completed}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// Terminal states reject further moves.
	cancelled := string(domain.StatusCancelled)
	_, err = updateUC.Execute(context.Background(), f.barberActor(), got.ID,
		UpdateAppointmentInput{Status: &cancelled})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("cancel after complete = %v, want conflict", err)
	}
}

func TestUpdateAppointmentRescheduleConflict(t *testing.T) {
	t.Parallel()

	f := newFixture()
	createUC := newCreateUC(f)
	updateUC := NewUpdateAppointment(f.repo, f.emitter, calendar.Disabled{}, zap.NewNop()).
		WithClock(clock)
	start := fixedNow.Add(24 * time.Hour)

	if _, err := createUC.Execute(context.Background(), f.clientActor(), CreateAppointmentInput{
		BarberID:        f.barber.ID,
		ClientID:        f.client.ID,
		AppointmentDate: start,
		Duration:        30,
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	actor2 := access.Actor{UserID: f.client2.UserID, Role: models.RoleClient}
	second, err := createUC.Execute(context.Background(), actor2, CreateAppointmentInput{
		BarberID:        f.barber.ID,
		ClientID:        f.client2.ID,
		AppointmentDate: start.Add(time.Hour),
		Duration:        30,
	})
	if err != nil {
		t.Fatalf("second booking: %v", err)
	}

	// Moving the second booking onto the first must fail.
	clash := start.Add(15 * time.Minute)
	_, err = updateUC.Execute(context.Background(), actor2, second.ID,
		UpdateAppointmentInput{AppointmentDate: &clash})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("reschedule onto live slot = %v, want conflict", err)
	}

	// Moving it somewhere free works, and moving over itself is not a
	// self-conflict.
	sameSpot := second.AppointmentDate
	if _, err := updateUC.Execute(context.Background(), actor2, second.ID,
		UpdateAppointmentInput{AppointmentDate: &sameSpot}); err != nil {
		t.Fatalf("reschedule onto own slot: %v", err)
	}
}

func TestCancelAppointment(t *testing.T) {
	t.Parallel()

	f := newFixture()
	createUC := newCreateUC(f)
	cancelUC := NewCancelAppointment(f.repo, f.emitter, calendar.Disabled{}, zap.NewNop()).
		WithClock(clock)

	ap, err := createUC.Execute(context.Background(), f.clientActor(), CreateAppointmentInput{
		BarberID:        f.barber.ID,
		ClientID:        f.client.ID,
		AppointmentDate: fixedNow.Add(24 * time.Hour),
		Duration:        30,
	})
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	got, err := cancelUC.Execute(context.Background(), f.clientActor(), ap.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Status != string(domain.StatusCancelled) || got.CancelledAt == nil {
		t.Errorf("status = %s, CancelledAt = %v; want cancelled and stamped", got.Status, got.CancelledAt)
	}

	// Both parties hear about it.
	events := f.emitter.byType(models.NotificationAppointmentCancelled)
	if len(events) != 2 {
		t.Fatalf("cancelled notifications = %d, want 2", len(events))
	}

	// An unrelated client cannot cancel.
	other, err := createUC.Execute(context.Background(),
		access.Actor{UserID: f.client2.UserID, Role: models.RoleClient},
		CreateAppointmentInput{
			BarberID:        f.barber.ID,
			ClientID:        f.client2.ID,
			AppointmentDate: fixedNow.Add(48 * time.Hour),
			Duration:        30,
		})
	if err != nil {
		t.Fatalf("second booking: %v", err)
	}
	if _, err := cancelUC.Execute(context.Background(), f.clientActor(), other.ID); !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("foreign cancel = %v, want forbidden", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	t.Parallel()

	f := newFixture()
	createUC := newCreateUC(f)
	deleteUC := NewDeleteAppointment(f.repo, calendar.Disabled{}, zap.NewNop())

	ap, err := createUC.Execute(context.Background(), f.clientActor(), CreateAppointmentInput{
		BarberID:        f.barber.ID,
		ClientID:        f.client.ID,
		AppointmentDate: fixedNow.Add(24 * time.Hour),
		Duration:        30,
	})
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	if err := deleteUC.Execute(context.Background(), f.clientActor(), ap.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.repo.GetAppointmentByID(context.Background(), ap.ID); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("appointment still present after delete: %v", err)
	}
}
