package organization

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/access"
	"github.com/barberia-app/barberia-api/internal/apperr"
	"github.com/barberia-app/barberia-api/internal/domain/identity"
	"github.com/barberia-app/barberia-api/internal/models"
)

// fakeBootstrapRepo covers only the methods the bootstrap path touches;
// anything else panics through the embedded nil interface.
type fakeBootstrapRepo struct {
	identity.Repository

	users map[string]*models.User
	orgs  []*models.Organization
	fail  error
}

func newFakeBootstrapRepo() *fakeBootstrapRepo {
	return &fakeBootstrapRepo{users: make(map[string]*models.User)}
}

func (f *fakeBootstrapRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

func (f *fakeBootstrapRepo) CreateOrganizationWithAdmin(
	_ context.Context,
	admin *models.User,
	org *models.Organization,
) error {
	if f.fail != nil {
		return f.fail
	}
	admin.ID = uuid.New()
	f.users[admin.Email] = admin
	org.ID = uuid.New()
	org.AdminID = admin.ID
	f.orgs = append(f.orgs, org)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (fakeHasher) Verify(plain, digest string) bool  { return digest == "hashed:"+plain }

func TestBootstrapOrganization(t *testing.T) {
	t.Parallel()

	repo := newFakeBootstrapRepo()
	uc := NewBootstrapOrganization(repo, fakeHasher{})
	superadmin := access.Actor{UserID: uuid.New(), Role: models.RoleSuperadmin}

	org, err := uc.Execute(context.Background(), superadmin, BootstrapInput{
		Name:           "Corte Fino",
		Address:        "Av. Siempre Viva 742",
		Email:          "contacto@cortefino.example",
		AdminEmail:     "  Dueno@CorteFino.example ",
		AdminPassword:  "s3cret-pass",
		AdminFirstName: "Marta",
		AdminLastName:  "Ruiz",
	})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	if org.Admin.Email != "dueno@cortefino.example" {
		t.Errorf("admin email = %q, want normalized lowercase", org.Admin.Email)
	}
	if org.Admin.Role != models.RoleAdmin {
		t.Errorf("admin role = %q, want %q", org.Admin.Role, models.RoleAdmin)
	}
	if org.Admin.AuthProvider != models.ProviderLocal {
		t.Errorf("admin provider = %q, want %q", org.Admin.AuthProvider, models.ProviderLocal)
	}
	if org.Admin.PasswordHash == nil || *org.Admin.PasswordHash != "hashed:s3cret-pass" {
		t.Error("admin password was not hashed")
	}
	if org.AdminID != org.Admin.ID {
		t.Errorf("org admin id = %v, want %v", org.AdminID, org.Admin.ID)
	}
	if len(repo.orgs) != 1 || len(repo.users) != 1 {
		t.Fatalf("persisted orgs=%d users=%d, want 1 and 1", len(repo.orgs), len(repo.users))
	}

	// Same admin email again is a conflict.
	if _, err := uc.Execute(context.Background(), superadmin, BootstrapInput{
		Name:          "Corte Fino II",
		AdminEmail:    "dueno@cortefino.example",
		AdminPassword: "another-pass",
	}); !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("duplicate admin email = %v, want conflict", err)
	}

	if _, err := uc.Execute(context.Background(), superadmin, BootstrapInput{
		Name:          "Sin Correo",
		AdminEmail:    "not-an-email",
		AdminPassword: "whatever-pass",
	}); !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("bad admin email = %v, want validation", err)
	}
}

func TestBootstrapOrganizationWriteFailureLeavesNothing(t *testing.T) {
	t.Parallel()

	repo := newFakeBootstrapRepo()
	repo.fail = errors.New("db down")
	uc := NewBootstrapOrganization(repo, fakeHasher{})

	_, err := uc.Execute(context.Background(),
		access.Actor{UserID: uuid.New(), Role: models.RoleSuperadmin},
		BootstrapInput{
			Name:          "Corte Fino",
			AdminEmail:    "dueno@cortefino.example",
			AdminPassword: "s3cret-pass",
		})
	if err == nil {
		t.Fatal("bootstrap succeeded against a failing store")
	}
	if len(repo.orgs) != 0 || len(repo.users) != 0 {
		t.Errorf("persisted orgs=%d users=%d after failure, want none", len(repo.orgs), len(repo.users))
	}
}

// The platform operations gate on role before any repository call, so a
// nil repository proves the denial happens first.
func TestPlatformOperationsRequireSuperadmin(t *testing.T) {
	t.Parallel()

	for _, role := range []string{models.RoleAdmin, models.RoleBarber, models.RoleClient} {
		actor := access.Actor{Role: role}

		if _, err := NewBootstrapOrganization(nil, nil).Execute(context.Background(), actor, BootstrapInput{}); !apperr.IsKind(err, apperr.KindForbidden) {
			t.Errorf("bootstrap as %s = %v, want forbidden", role, err)
		}
		if _, err := NewCreateAdmin(nil, nil).Execute(context.Background(), actor, CreateAdminInput{}); !apperr.IsKind(err, apperr.KindForbidden) {
			t.Errorf("create admin as %s = %v, want forbidden", role, err)
		}
		if _, err := NewListOrganizations(nil).Execute(context.Background(), actor); !apperr.IsKind(err, apperr.KindForbidden) {
			t.Errorf("list organizations as %s = %v, want forbidden", role, err)
		}
		if _, _, err := NewListUsers(nil).Execute(context.Background(), actor, ListUsersInput{}); !apperr.IsKind(err, apperr.KindForbidden) {
			t.Errorf("list users as %s = %v, want forbidden", role, err)
		}
	}
}
