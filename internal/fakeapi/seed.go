package fakeapi

// Demo account created by Seed.
const (
	DemoUsername = "demo"
	DemoEmail    = "demo@lyra.dev"
	DemoPassword = "demo1234"
)

// Seed creates the demo account and publishes a few packages under it.
func Seed(s *Store) (User, error) {
	u, err := s.CreateUser(DemoUsername, DemoEmail, DemoPassword)
	if err != nil {
		return User{}, err
	}
	pkgs := []Package{
		{
			Name:        "strings",
			Description: "String helpers",
			Version:     "1.2.0",
			Files: []File{
				{Name: "strings.ly", Path: "src/strings.ly", Content: "fn upper(s) { }\n"},
			},
		},
		{
			Name:        "math",
			Description: "Integer math",
			Version:     "0.3.1",
			Files: []File{
				{Name: "math.ly", Path: "src/math.ly", Content: "fn abs(x) { }\n"},
				{Name: "README", Path: "README", Content: "math for lyra\n"},
			},
		},
	}
	for _, p := range pkgs {
		if err := s.Publish(u.ID, p); err != nil {
			return User{}, err
		}
	}
	return s.UserByID(u.ID)
}
