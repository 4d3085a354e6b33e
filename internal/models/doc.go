// Package models defines the core domain models for splitledger.
//
// # Models
//
//   - Group: a set of people who share expenses
//   - Member: a participant of exactly one group
//   - Expense: an amount paid by one member and split among several
//   - Payment: a recorded transfer that settles (part of) a debt
//   - Ledger: a point-in-time snapshot of one group
//
// Derived values (balances and settlement plans) are not models; they are
// computed by the calculator package from a Ledger and never stored.
//
// # Design Principles
//
// 1. **Snapshots over shared state**: callers pass a Ledger explicitly
// 2. **Decimal money**: amounts use shopspring/decimal, never float64
// 3. **Avoid circular references**: use ID strings instead of pointers for relationships
package models
