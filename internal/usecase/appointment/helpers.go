package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/barberia-app/barberia-api/internal/access"
	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/calendar"
	domain "github.com/barberia-app/barberia-api/internal/domain/appointment"
	"github.com/barberia-app/barberia-api/internal/models"
	"github.com/barberia-app/barberia-api/internal/notify"
)

// resolveOwnership builds the appointment's ownership chain for the
// access evaluator. Barber and client come preloaded on the appointment;
// only the organization admin needs a lookup.
func resolveOwnership(
	ctx context.Context,
	repo domain.Repository,
	ap *models.Appointment,
) (access.Ownership, error) {

	own := access.Ownership{
		OrganizationID: ap.OrganizationID,
		BarberUserID:   ap.Barber.UserID,
		ClientUserID:   ap.Client.UserID,
	}

	org, err := repo.GetOrganizationByID(ctx, ap.OrganizationID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return own, nil
		}
		return own, err
	}
	own.AdminID = org.AdminID

	return own, nil
}

// emitCreated notifies both parties about a new appointment request.
func emitCreated(emitter notify.Emitter, ap *models.Appointment) {
	date := ap.AppointmentDate.Format("2006-01-02 15:04")
	meta := map[string]any{"appointment_id": ap.ID.String()}

	emitter.Enqueue(notify.Event{
		UserID:   ap.Barber.UserID,
		Type:     models.NotificationAppointmentCreated,
		Title:    "New appointment",
		Message:  "You have a new appointment on " + date,
		Metadata: meta,
	})
	emitter.Enqueue(notify.Event{
		UserID:   ap.Client.UserID,
		Type:     models.NotificationAppointmentCreated,
		Title:    "Appointment requested",
		Message:  "Your appointment request for " + date + " has been received",
		Metadata: meta,
	})
}

// emitConfirmed notifies the client only.
func emitConfirmed(emitter notify.Emitter, ap *models.Appointment) {
	emitter.Enqueue(notify.Event{
		UserID:   ap.Client.UserID,
		Type:     models.NotificationAppointmentConfirmed,
		Title:    "Appointment confirmed",
		Message:  "Your appointment on " + ap.AppointmentDate.Format("2006-01-02 15:04") + " has been confirmed",
		Metadata: map[string]any{"appointment_id": ap.ID.String()},
	})
}

// emitCancelled notifies both parties.
func emitCancelled(emitter notify.Emitter, ap *models.Appointment) {
	meta := map[string]any{"appointment_id": ap.ID.String()}

	emitter.Enqueue(notify.Event{
		UserID:   ap.Barber.UserID,
		Type:     models.NotificationAppointmentCancelled,
		Title:    "Appointment cancelled",
		Message:  "An appointment has been cancelled",
		Metadata: meta,
	})
	emitter.Enqueue(notify.Event{
		UserID:   ap.Client.UserID,
		Type:     models.NotificationAppointmentCancelled,
		Title:    "Appointment cancelled",
		Message:  "Your appointment has been cancelled",
		Metadata: meta,
	})
}

// syncCalendarEvent pushes the appointment to the calendar collaborator.
// Failures are logged and swallowed; the event reference is stored
// independently of the appointment write.
func syncCalendarEvent(
	ctx context.Context,
	repo domain.Repository,
	cal calendar.Sync,
	log *zap.Logger,
	ap *models.Appointment,
) {
	eventID, err := cal.UpsertEvent(ctx, ap)
	if err != nil {
		log.Warn("calendar sync failed",
			zap.String("appointment_id", ap.ID.String()),
			zap.Error(err),
		)
		return
	}
	if eventID == "" {
		return
	}

	if err := repo.SetCalendarEvent(ctx, ap.ID, &eventID); err != nil {
		log.Warn("storing calendar event reference failed",
			zap.String("appointment_id", ap.ID.String()),
			zap.Error(err),
		)
		return
	}
	ap.CalendarEventID = &eventID
}

// dropCalendarEvent removes the calendar event if one is linked.
// Delete-of-nonexistent counts as success.
func dropCalendarEvent(
	ctx context.Context,
	repo domain.Repository,
	cal calendar.Sync,
	log *zap.Logger,
	ap *models.Appointment,
) {
	if ap.CalendarEventID == nil {
		return
	}

	if err := cal.DeleteEvent(ctx, *ap.CalendarEventID); err != nil {
		log.Warn("calendar event delete failed",
			zap.String("appointment_id", ap.ID.String()),
			zap.Error(err),
		)
		return
	}

	if err := repo.SetCalendarEvent(ctx, ap.ID, nil); err != nil {
		log.Warn("clearing calendar event reference failed",
			zap.String("appointment_id", ap.ID.String()),
			zap.Error(err),
		)
		return
	}
	ap.CalendarEventID = nil
}
