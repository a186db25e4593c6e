// Package models defines the client-side records exchanged with the
// registry API together with explicit shape validators for them.
//
// Every payload coming off the wire, including a decoded credential payload,
// goes through a Parse* function instead of a plain json.Unmarshal: fields
// must be present and carry the right JSON type, unknown fields are ignored.
// Failures wrap ErrMalformed (not JSON) or ErrShape (wrong shape).
package models
