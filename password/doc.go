// Package password provides the password hashing collaborator used by the
// basic-auth strategy and the login handler.
//
// # Design
//
// Hashing is bcrypt with a per-hash salt; Verify is a constant-time check
// through the bcrypt comparison. The hash string is self-describing, so no
// parameters need to be stored next to it.
//
// # What this package must NOT do
//
//   - Store or log plaintext passwords.
//   - Import authgate or any sibling package.
package password
