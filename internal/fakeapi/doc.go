// Package fakeapi is an in-memory registry server for local development and
// end-to-end tests of the client. It serves the same routes and payloads as
// the registry API, keeps everything in memory and signs HS256 tokens that
// carry the user's id, username and email.
package fakeapi
