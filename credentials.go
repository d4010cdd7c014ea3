package session

import "sync"

// Credentials is the explicit credential context shared by the store and the
// transport. Login fulfillment sets it, logout clears it. Keeping it an
// object passed to collaborators, instead of a mutable default header hidden
// inside the HTTP client, gives logout a real teardown path.
type Credentials struct {
	mu    sync.RWMutex
	token string
}

// NewCredentials returns an empty credential context
func NewCredentials() *Credentials {
	return &Credentials{}
}

// Set installs the bearer token used on subsequent requests
func (c *Credentials) Set(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Clear removes the token. Requests issued afterwards go out anonymous.
func (c *Credentials) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// Token returns the raw token and whether one is set
func (c *Credentials) Token() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.token != ""
}

// Authorization returns the value for the Authorization header
func (c *Credentials) Authorization() (string, bool) {
	token, ok := c.Token()
	if !ok {
		return "", false
	}
	return "Bearer " + token, true
}
