// utils/firebase.go
package utils

import (
	"context"
	"log"

	"github.com/mohamedfathy32/elnaseem-crm/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var AuthClient *auth.Client

// FirebaseInit initializes the Firebase App and Auth client. The Auth client
// both verifies staff ID tokens and creates employee accounts server-side, so
// account creation never disturbs the calling manager's own session.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	AuthClient = client
}

// GetAuthClient returns the Firebase Auth client.
func GetAuthClient() *auth.Client {
	return AuthClient
}
