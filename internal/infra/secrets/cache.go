// Package secrets provides the credential sources behind the resolver:
// GCP Secret Manager, the metadata-server project probe and a process cache.
package secrets

import "sync"

// Cache keeps secret values and the detected project id for the lifetime of
// the process. It is constructed once and injected into the resolver.
type Cache struct {
	mu        sync.RWMutex
	values    map[string]string
	projectID string
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{values: make(map[string]string)}
}

// Secret returns a previously stored value for secretID.
func (c *Cache) Secret(secretID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.values[secretID]

	return v, ok
}

func (c *Cache) SetSecret(secretID, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[secretID] = value
}

// ProjectID returns the cached project id, if one was detected.
func (c *Cache) ProjectID() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.projectID, c.projectID != ""
}

func (c *Cache) SetProjectID(projectID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.projectID = projectID
}
