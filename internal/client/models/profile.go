package models

import "time"

// OtherUserProfile is the public view of another user.
type OtherUserProfile struct {
	Username        string    `json:"username"`
	CreatedAt       time.Time `json:"createdAt"`
	PackagesCreated []string  `json:"packagesCreated"`
}

// ParseProfile validates the body of GET users/{id}.
func ParseProfile(data []byte) (OtherUserProfile, error) {
	obj, err := object(data)
	if err != nil {
		return OtherUserProfile{}, err
	}

	username, err := stringField(obj, "username")
	if err != nil {
		return OtherUserProfile{}, err
	}
	createdAt, err := timeField(obj, "createdAt")
	if err != nil {
		return OtherUserProfile{}, err
	}
	raw, err := arrayField(obj, "packagesCreated")
	if err != nil {
		return OtherUserProfile{}, err
	}

	pkgs := make([]string, 0, len(raw))
	for _, item := range raw {
		name, ok := item.(string)
		if !ok {
			return OtherUserProfile{}, errShapef("packagesCreated must hold strings")
		}
		pkgs = append(pkgs, name)
	}

	return OtherUserProfile{Username: username, CreatedAt: createdAt, PackagesCreated: pkgs}, nil
}
