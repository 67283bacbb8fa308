// Package access decides allow/deny for every mutation in one data-driven
// table instead of per-handler if/else chains. It is pure: callers resolve
// the target's ownership chain first, then ask for a verdict.
package access

import (
	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/models"
)

type Operation int

const (
	OpBootstrapOrganization Operation = iota
	OpCreateAdmin
	OpListUsers
	OpReadOrganization
	OpUpdateOrganization
	OpListOrganizations
	OpCreateBarber
	OpReadBarber
	OpUpdateBarber
	OpListBarbers
	OpReadClient
	OpUpdateClient
	OpCreateAppointment
	OpReadAppointment
	OpUpdateAppointment
	OpCancelAppointment
	OpDeleteAppointment
)

// Actor is the authenticated identity performing an operation.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

// Ownership is the resolved ownership chain of the target resource.
// Fields irrelevant to the operation stay zero.
type Ownership struct {
	// AdminID is the admin of the organization that owns the resource.
	AdminID uuid.UUID
	// BarberUserID is the user behind the barber that owns the resource.
	BarberUserID uuid.UUID
	// ClientUserID is the user behind the client that owns the resource.
	ClientUserID uuid.UUID
	// OrganizationID is the organization the resource belongs to.
	OrganizationID uuid.UUID
	// ActorOrganizationID is the organization of the acting barber,
	// resolved by the caller for same-organization checks.
	ActorOrganizationID uuid.UUID
}

type rule func(Actor, Ownership) error

func allow(Actor, Ownership) error { return nil }

func denyIfNot(match func(Actor, Ownership) bool, message string) rule {
	return func(a Actor, o Ownership) error {
		if match(a, o) {
			return nil
		}
		return apperr.Forbidden(message)
	}
}

var matrix = map[Operation]map[string]rule{
	OpBootstrapOrganization: {
		models.RoleSuperadmin: allow,
	},
	OpCreateAdmin: {
		models.RoleSuperadmin: allow,
	},
	OpListUsers: {
		models.RoleSuperadmin: allow,
	},
	OpReadOrganization: {
		models.RoleSuperadmin: allow,
		models.RoleAdmin: denyIfNot(isOrgAdmin,
			"no access to this organization"),
	},
	OpUpdateOrganization: {
		models.RoleSuperadmin: allow,
		models.RoleAdmin: denyIfNot(isOrgAdmin,
			"no permission to update this organization"),
	},
	OpListOrganizations: {
		models.RoleSuperadmin: allow,
	},
	OpCreateBarber: {
		models.RoleSuperadmin: allow,
		models.RoleAdmin: denyIfNot(isOrgAdmin,
			"no permission to create barbers in this organization"),
	},
	OpReadBarber: {
		models.RoleSuperadmin: allow,
		models.RoleAdmin: denyIfNot(isOrgAdmin,
			"no access to this barber"),
		models.RoleBarber: denyIfNot(isOwnBarberProfile,
			"you can only view your own profile"),
	},
	OpUpdateBarber: {
		models.RoleSuperadmin: allow,
		models.RoleAdmin: denyIfNot(isOrgAdmin,
			"no permission to update this barber"),
		models.RoleBarber: denyIfNot(isOwnBarberProfile,
			"you can only update your own profile"),
	},
	OpListBarbers: {
		models.RoleSuperadmin: allow,
		models.RoleAdmin: denyIfNot(isOrgAdmin,
			"no access to this organization"),
		models.RoleBarber: denyIfNot(isSameOrganization,
			"no access to this organization"),
	},
	OpReadClient: {
		models.RoleSuperadmin: allow,
		models.RoleClient: denyIfNot(isOwnClientRecord,
			"no access to this client"),
	},
	OpUpdateClient: {
		models.RoleSuperadmin: allow,
		models.RoleClient: denyIfNot(isOwnClientRecord,
			"no permission to update this client"),
	},
	OpCreateAppointment: {
		models.RoleSuperadmin: allow,
		models.RoleClient: denyIfNot(isOwnClientRecord,
			"you can only create appointments for yourself"),
	},
	OpReadAppointment: {
		models.RoleSuperadmin: allow,
		models.RoleAdmin: denyIfNot(isOrgAdmin,
			"no access to this appointment"),
		models.RoleBarber: denyIfNot(isAppointmentBarber,
			"no access to this appointment"),
		models.RoleClient: denyIfNot(isAppointmentClient,
			"no access to this appointment"),
	},
	OpUpdateAppointment: {
		models.RoleSuperadmin: allow,
		models.RoleAdmin: denyIfNot(isOrgAdmin,
			"no permission to update this appointment"),
		models.RoleBarber: denyIfNot(isAppointmentBarber,
			"you can only update your own appointments"),
		models.RoleClient: denyIfNot(isAppointmentClient,
			"you can only update your own appointments"),
	},
	OpCancelAppointment: {
		models.RoleSuperadmin: allow,
		models.RoleAdmin: denyIfNot(isOrgAdmin,
			"no permission to cancel this appointment"),
		models.RoleBarber: denyIfNot(isAppointmentBarber,
			"you can only cancel your own appointments"),
		models.RoleClient: denyIfNot(isAppointmentClient,
			"you can only cancel your own appointments"),
	},
	OpDeleteAppointment: {
		models.RoleSuperadmin: allow,
		models.RoleAdmin: denyIfNot(isOrgAdmin,
			"no permission to delete this appointment"),
		models.RoleBarber: denyIfNot(isAppointmentBarber,
			"you can only delete your own appointments"),
		models.RoleClient: denyIfNot(isAppointmentClient,
			"you can only delete your own appointments"),
	},
}

func isOrgAdmin(a Actor, o Ownership) bool {
	return o.AdminID != uuid.Nil && o.AdminID == a.UserID
}

func isOwnBarberProfile(a Actor, o Ownership) bool {
	return o.BarberUserID != uuid.Nil && o.BarberUserID == a.UserID
}

func isSameOrganization(a Actor, o Ownership) bool {
	return o.OrganizationID != uuid.Nil && o.OrganizationID == o.ActorOrganizationID
}

func isOwnClientRecord(a Actor, o Ownership) bool {
	return o.ClientUserID != uuid.Nil && o.ClientUserID == a.UserID
}

func isAppointmentBarber(a Actor, o Ownership) bool {
	return o.BarberUserID != uuid.Nil && o.BarberUserID == a.UserID
}

func isAppointmentClient(a Actor, o Ownership) bool {
	return o.ClientUserID != uuid.Nil && o.ClientUserID == a.UserID
}

// Authorize returns nil when the actor may perform op on the resource
// described by own, or a ForbiddenError with a resource-specific reason.
func Authorize(actor Actor, op Operation, own Ownership) error {
	rules, ok := matrix[op]
	if !ok {
		return apperr.Forbidden("operation not permitted")
	}

	r, ok := rules[actor.Role]
	if !ok {
		return apperr.Forbidden("your role cannot perform this operation")
	}

	return r(actor, own)
}
