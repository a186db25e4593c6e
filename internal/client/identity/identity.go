// Package identity derives the logged-in user's Identity from a bearer
// credential without a server round trip.
//
// A credential is a three-segment token (header.payload.signature). Only the
// payload is inspected: it is base64 decoded (URL-safe or standard alphabet,
// padding optional), parsed as JSON and shape-checked by models.ParseIdentity.
// The signature is not verified; the credential only ever comes back from the
// server that issued it.
package identity

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/lyrapkg/lyra/internal/client/models"
)

var (
	ErrSegments = errors.New("credential must have three segments")
	ErrEncoding = errors.New("credential payload is not base64")
	ErrPayload  = errors.New("credential payload is not json")
	ErrShape    = errors.New("credential payload has wrong shape")
)

var urlSafe = strings.NewReplacer("-", "+", "_", "/")

// Parse decodes token into an Identity. The returned error wraps exactly one
// of ErrSegments, ErrEncoding, ErrPayload or ErrShape; on error the Identity
// is always the zero value.
func Parse(token string) (models.Identity, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return models.Identity{}, fmt.Errorf("%w: got %d", ErrSegments, len(parts))
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	id, err := models.ParseIdentity(payload)
	switch {
	case errors.Is(err, models.ErrMalformed):
		return models.Identity{}, fmt.Errorf("%w: %v", ErrPayload, err)
	case err != nil:
		return models.Identity{}, fmt.Errorf("%w: %v", ErrShape, err)
	}
	return id, nil
}

// Decode is Parse with the failure reason dropped.
func Decode(token string) (models.Identity, bool) {
	id, err := Parse(token)
	if err != nil {
		return models.Identity{}, false
	}
	return id, true
}

// decodeSegment accepts unpadded input, or input padded to a multiple of
// four with at most two '='.
func decodeSegment(seg string) ([]byte, error) {
	s := urlSafe.Replace(seg)
	if len(s)%4 == 0 {
		s = strings.TrimSuffix(s, "=")
		s = strings.TrimSuffix(s, "=")
	}
	return base64.RawStdEncoding.DecodeString(s)
}
