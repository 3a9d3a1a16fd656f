package employee

import (
	"context"
	"fmt"

	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"firebase.google.com/go/v4/auth"
)

// IdentityClient is the slice of the identity provider's admin surface this
// service needs. Creating an account through the admin credential never
// signs anyone in, so the calling manager's session is untouched.
type IdentityClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	SetDisabled(ctx context.Context, uid string, disabled bool) error
	DeleteUser(ctx context.Context, uid string) error
}

// FirebaseIdentityClient implements IdentityClient over the Firebase Admin
// SDK.
type FirebaseIdentityClient struct {
	Auth *auth.Client
}

func NewFirebaseIdentityClient(client *auth.Client) *FirebaseIdentityClient {
	return &FirebaseIdentityClient{Auth: client}
}

func (f *FirebaseIdentityClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := f.Auth.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", utils.Wrap(utils.KindAlreadyExists, "email already registered", err)
		}
		return "", fmt.Errorf("failed to create identity: %w", err)
	}
	return record.UID, nil
}

func (f *FirebaseIdentityClient) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	params := (&auth.UserToUpdate{}).Disabled(disabled)
	if _, err := f.Auth.UpdateUser(ctx, uid, params); err != nil {
		return fmt.Errorf("failed to update identity: %w", err)
	}
	return nil
}

func (f *FirebaseIdentityClient) DeleteUser(ctx context.Context, uid string) error {
	if err := f.Auth.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}
	return nil
}
