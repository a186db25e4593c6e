package models

// Identity is the user record carried in the payload of a bearer credential.
// It is derived from the credential on demand and never persisted on its own.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ParseIdentity validates a decoded credential payload. It requires string
// fields id, username and email; anything else in the object is ignored.
func ParseIdentity(data []byte) (Identity, error) {
	obj, err := object(data)
	if err != nil {
		return Identity{}, err
	}
	f, err := stringFields(obj, "id", "username", "email")
	if err != nil {
		return Identity{}, err
	}
	return Identity{ID: f[0], Username: f[1], Email: f[2]}, nil
}
