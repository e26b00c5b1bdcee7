package service

import "context"

// SecretStore reads the latest version of a named secret.
type SecretStore interface {
	AccessSecret(ctx context.Context, projectID, secretID string) (string, error)
	Close() error
}

// ProjectIDSource discovers the cloud project the process runs in.
type ProjectIDSource interface {
	ProjectID(ctx context.Context) (string, error)
}

// SecretCache holds values resolved during the process lifetime.
type SecretCache interface {
	Secret(secretID string) (string, bool)
	SetSecret(secretID, value string)
	ProjectID() (string, bool)
	SetProjectID(projectID string)
}
