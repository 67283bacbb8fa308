package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/barberia-app/barberia-api/internal/access"
	"github.com/barberia-app/barberia-api/internal/calendar"
	domain "github.com/barberia-app/barberia-api/internal/domain/appointment"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/notify"
)

type CreateAppointmentInput struct {
	BarberID        uuid.UUID
	ClientID        uuid.UUID
	AppointmentDate time.Time
	Duration        int
	Notes           string
}

type CreateAppointment struct {
	repo    domain.Repository
	emitter notify.Emitter
	cal     calendar.Sync
	log     *zap.Logger
	now     func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	emitter notify.Emitter,
	cal calendar.Sync,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		emitter: emitter,
		cal:     cal,
		log:     log,
		now:     time.Now,
	}
}

func (uc *CreateAppointment) WithClock(now func() time.Time) *CreateAppointment {
	uc.now = now
	return uc
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor access.Actor,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := domain.ValidateDuration(in.Duration); err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.GetClientByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.OpCreateAppointment, access.Ownership{
		ClientUserID: client.UserID,
	}); err != nil {
		return nil, err
	}

	// Measured against the evaluation instant, not anything the request
	// claims.
	if err := domain.ValidateNotInPast(in.AppointmentDate, uc.now()); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		BarberID:        barber.ID,
		Barber:          *barber,
		ClientID:        client.ID,
		Client:          *client,
		OrganizationID:  barber.OrganizationID,
		AppointmentDate: in.AppointmentDate,
		Duration:        in.Duration,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	emitCreated(uc.emitter, ap)
	syncCalendarEvent(ctx, uc.repo, uc.cal, uc.log, ap)

	return ap, nil
}
