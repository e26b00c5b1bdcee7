package secrets

import (
	"context"
	"net/http"
	"strings"
	"time"

	"coach/config"
	"coach/internal/domain/service"
	"coach/internal/errors"

	"cloud.google.com/go/compute/metadata"
)

const projectIDPath = "project/project-id"

// metadataProjectSource asks the GCE/Cloud Run metadata server for the project
// id. The client sends the Metadata-Flavor: Google header on every request.
type metadataProjectSource struct {
	client  *metadata.Client
	timeout time.Duration
}

// NewMetadataProjectSource creates a project-id source bounded by the
// configured probe timeout.
func NewMetadataProjectSource(cfg *config.Config) service.ProjectIDSource {
	timeout := cfg.Secrets.MetadataTimeout

	return &metadataProjectSource{
		client:  metadata.NewClient(&http.Client{Timeout: timeout}),
		timeout: timeout,
	}
}

func (s *metadataProjectSource) ProjectID(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// The client's ProjectID helpers memoize process-wide; the resolver keeps
	// its own cache.
	projectID, err := s.client.GetWithContext(ctx, projectIDPath)
	if err != nil {
		return "", errors.Wrap(err, "query metadata server for project id")
	}

	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return "", errors.New("metadata server returned an empty project id")
	}

	return projectID, nil
}
