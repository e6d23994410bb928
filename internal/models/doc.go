// Package models defines the core domain models for courtsplit.
//
// # Models
//
//   - Session: one recorded cost-splitting event (date, costs, participants)
//   - The roster is a plain ordered []string of player names; players have no
//     identity beyond their display name, so no struct is needed
//
// # Design Principles
//
// 1. **Names are identity**: participants are display-name strings, unique
// case-insensitively within the roster. Renaming is removal + re-add.
//
// 2. **Historical independence**: a session keeps the participant names it was
// recorded with. Roster edits never cascade into the ledger.
//
// 3. **Derived fields travel with the record**: Total, PerPlayer and MonthKey
// are stored alongside the inputs so the persisted record is self-contained,
// and they are recomputed together on every mutation.
package models
