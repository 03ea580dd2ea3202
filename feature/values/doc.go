// Package values layers a generic value store on top of the object facade.
//
// Values are serialized with encoding/gob behind a short format marker,
// staged in uniquely-named temporary files, and stored as ordinary objects
// with an opaque binary content type. The marker lets Decode reject foreign
// or corrupt payloads with ErrForeignPayload instead of failing opaquely;
// beyond that the format carries no version tag, so encoder and decoder
// must come from the same codebase.
//
// Staging files are named with random UUIDs so concurrent operations in the
// same process cannot collide. A failed upload leaves its staging file
// behind; bounding that leak is the job of an external cleanup sweep.
package values
