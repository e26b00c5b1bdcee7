package entity

// Credentials is a Garmin account email/password pair. An empty field means the
// value could not be resolved.
type Credentials struct {
	Email    string
	Password string
}

// Complete reports whether both fields are present.
func (c Credentials) Complete() bool {
	return c.Email != "" && c.Password != ""
}

// Merge fills the empty fields of c from fallback.
func (c Credentials) Merge(fallback Credentials) Credentials {
	if c.Email == "" {
		c.Email = fallback.Email
	}
	if c.Password == "" {
		c.Password = fallback.Password
	}

	return c
}
