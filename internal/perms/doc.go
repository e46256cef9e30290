// Package perms is the permissions engine: pure functions mapping a
// (principal, resource, operation) to an allow/deny decision and a
// (principal, resource set) to its visible subset.
//
// There are only a few access patterns across the variants, so the rules
// collapse into a small per-variant table plus an ownership/grant check:
//
//   - Admins can do anything to anything.
//   - Content managers have full access to resources their account owns and
//     to global (ownerless) variants, and read access to resources granted to
//     their account.
//   - Users get read-only access to enabled resources owned by or granted to
//     their account (and to globally readable variants), and may mutate only
//     owned records of variants that permit user-level mutation.
//
// Decisions depend only on the arguments; nothing here reads ambient state,
// which keeps the rules unit-testable without a request context.
package perms
