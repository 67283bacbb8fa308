// Package client serves the client profile: a client reads and updates
// their own record, SUPERADMIN any record. Client rows are created on
// registration, never here.
package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberia-app/barberia-api/internal/access"
	"github.com/barberia-app/barberia-api/internal/models"
)

type Repository interface {
	GetClientByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	UpdateClient(ctx context.Context, client *models.Client) error
}

type GetClient struct {
	repo Repository
}

func NewGetClient(repo Repository) *GetClient {
	return &GetClient{repo: repo}
}

func (uc *GetClient) Execute(
	ctx context.Context,
	actor access.Actor,
	clientID uuid.UUID,
) (*models.Client, error) {

	client, err := uc.repo.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	own := access.Ownership{ClientUserID: client.UserID}
	if err := access.Authorize(actor, access.OpReadClient, own); err != nil {
		return nil, err
	}

	return client, nil
}

type UpdateClientInput struct {
	// Preferences replaces the stored blob wholesale; nil leaves it
	// untouched.
	Preferences map[string]any
}

type UpdateClient struct {
	repo Repository
}

func NewUpdateClient(repo Repository) *UpdateClient {
	return &UpdateClient{repo: repo}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	actor access.Actor,
	clientID uuid.UUID,
	in UpdateClientInput,
) (*models.Client, error) {

	client, err := uc.repo.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	own := access.Ownership{ClientUserID: client.UserID}
	if err := access.Authorize(actor, access.OpUpdateClient, own); err != nil {
		return nil, err
	}

	if in.Preferences != nil {
		client.Preferences = in.Preferences
	}

	if err := uc.repo.UpdateClient(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}
