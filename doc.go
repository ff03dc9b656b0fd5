// Package nexo provides the data and session core of the Nexo personal
// finance application. It is designed to be local-first and fully
// synchronous: every collection lives as a single serialized record in a
// key-value store, and every mutation is a full read-modify-write of the
// collection it touches.
//
// The core functionalities include:
//   - Persistent Store: a small key-value contract over a fixed set of
//     logical keys, with a directory-backed and an in-memory implementation.
//   - User Directory: CRUD over the user collection with a unique-email
//     guarantee on creation, status and role toggling, and password resets.
//   - Session Manager: the "who is logged in" state, split into a user
//     session snapshot and an independent admin-session flag.
//   - Account Ledger: bank-account records whose balance is authoritative
//     cached state, mutated directly by transaction postings.
//   - Transaction Journal: an append-only, newest-first list of financial
//     entries; recording an entry and adjusting the linked account balance
//     is a single paired operation.
//   - Theme Store: the persisted primary/secondary color pair, with a
//     documented default when unset.
//
// This package serves as the foundational logic for the `nexo` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package nexo
