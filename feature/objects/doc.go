// Package objects implements the object lifecycle facade over the storage client.
//
// Every operation is a thin forwarding call into the store, keyed by a
// virtual path (base path + identifier joined with slash semantics), with
// tag normalization and error classification layered on top.
//
// # Not-Found Semantics
//
// Get, Stat and Tags model a missing object as an absent result with a nil
// error: the store is probed for existence routinely and not-found is not a
// failure. Delete preserves the historical baseline instead: a not-found
// delete returns false with a nil error (neither a reported failure nor the
// idempotent true).
//
// # Folder Deletion
//
// DeleteFolder lists the prefix recursively and removes objects one at a
// time. Not-found removals are benign (a concurrent deleter won the race);
// any other per-object failure is collected and the traversal continues.
// The listing snapshot carries no isolation guarantee: objects added
// concurrently under the prefix may or may not be included.
//
// # Errors
//
// Failures are classified with Error kinds (connection, bucket_provisioning,
// object_write, object_read, listing, delete) and matchable via errors.As.
package objects
