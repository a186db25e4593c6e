package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentity(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Identity
		wantErr error
	}{
		{
			name: "exact fields",
			in:   `{"id":"1","username":"ana","email":"a@x.com"}`,
			want: Identity{ID: "1", Username: "ana", Email: "a@x.com"},
		},
		{
			name: "extra fields ignored",
			in:   `{"id":"1","username":"ana","email":"a@x.com","exp":1735689600,"iat":1}`,
			want: Identity{ID: "1", Username: "ana", Email: "a@x.com"},
		},
		{name: "missing email", in: `{"id":"1","username":"ana"}`, wantErr: ErrShape},
		{name: "numeric id", in: `{"id":1,"username":"ana","email":"a@x.com"}`, wantErr: ErrShape},
		{name: "null field", in: `{"id":"1","username":null,"email":"a@x.com"}`, wantErr: ErrShape},
		{name: "array", in: `[1,2]`, wantErr: ErrShape},
		{name: "null", in: `null`, wantErr: ErrShape},
		{name: "not json", in: `{"id":`, wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIdentity([]byte(tt.in))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Identity{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseProfile(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := ParseProfile([]byte(`{
			"username": "ana",
			"createdAt": "2025-03-01T10:20:30.123Z",
			"packagesCreated": ["left-pad", "is-odd"]
		}`))
		require.NoError(t, err)
		assert.Equal(t, "ana", p.Username)
		assert.Equal(t, time.Date(2025, 3, 1, 10, 20, 30, 123000000, time.UTC), p.CreatedAt.UTC())
		assert.Equal(t, []string{"left-pad", "is-odd"}, p.PackagesCreated)
	})

	t.Run("empty package list", func(t *testing.T) {
		p, err := ParseProfile([]byte(`{"username":"b","createdAt":"2025-01-01T00:00:00Z","packagesCreated":[]}`))
		require.NoError(t, err)
		assert.Empty(t, p.PackagesCreated)
	})

	bad := map[string]string{
		"null packages":   `{"username":"b","createdAt":"2025-01-01T00:00:00Z","packagesCreated":null}`,
		"non-string item": `{"username":"b","createdAt":"2025-01-01T00:00:00Z","packagesCreated":["a",1]}`,
		"bad timestamp":   `{"username":"b","createdAt":"yesterday","packagesCreated":[]}`,
		"no username":     `{"createdAt":"2025-01-01T00:00:00Z","packagesCreated":[]}`,
	}
	for name, in := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProfile([]byte(in))
			require.ErrorIs(t, err, ErrShape)
		})
	}
}

func TestParsePackages(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		pkgs, err := ParsePackages([]byte(`{"packages":[
			{"name":"left-pad","description":"pads","version":"1.0.0","owner":"x",
			 "files":[{"name":"main.ly","path":"src/main.ly","content":"print 1"}]},
			{"name":"empty","description":"","version":"0.1.0","files":[]}
		]}`))
		require.NoError(t, err)
		require.Len(t, pkgs, 2)
		assert.Equal(t, Package{
			Name:        "left-pad",
			Description: "pads",
			Version:     "1.0.0",
			Files:       []PackageFile{{Name: "main.ly", Path: "src/main.ly", Content: "print 1"}},
		}, pkgs[0])
		assert.Empty(t, pkgs[1].Files)
	})

	t.Run("file without path rejects all", func(t *testing.T) {
		_, err := ParsePackages([]byte(`{"packages":[
			{"name":"a","description":"","version":"1","files":[{"name":"f","content":""}]}
		]}`))
		require.ErrorIs(t, err, ErrShape)
		assert.Contains(t, err.Error(), "packages[0]")
	})

	t.Run("packages not an array", func(t *testing.T) {
		_, err := ParsePackages([]byte(`{"packages":{}}`))
		require.ErrorIs(t, err, ErrShape)
	})
}

func TestParseAuthResponse(t *testing.T) {
	tok, err := ParseAuthResponse([]byte(`{"id":"65f0","token":"a.b.c"}`))
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", tok)

	_, err = ParseAuthResponse([]byte(`{"token":42}`))
	require.ErrorIs(t, err, ErrShape)

	_, err = ParseAuthResponse([]byte(`{}`))
	require.ErrorIs(t, err, ErrShape)

	_, err = ParseAuthResponse([]byte(`<html>`))
	require.ErrorIs(t, err, ErrMalformed)
}
