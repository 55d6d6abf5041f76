// Package fundpool implements unit-based ownership accounting for a pooled
// fund with multiple contributors. It is designed to be local-first and
// auditable: every number it produces can be replayed from two plain files.
//
// The core functionalities include:
//   - Ledger Management: Recording contributions and withdrawals in an
//     immutable, chronological record.
//   - Valuation Feed: Storing the fund's aggregated daily value, with bounded
//     lookback when a day is missing from the feed.
//   - NAV Engine: A stateless engine that replays the ledger against the feed
//     and produces outstanding units per contributor, a NAV audit trail, and
//     protection against implausible valuation swings.
//   - Ownership Reports: Pure derivation of each contributor's ownership
//     percentage, dollar value, and return from the engine output.
//   - Data Persistence: Encoding and decoding of the ledger and the feed to
//     and from human-readable, version-controllable JSONL files.
//
// This package serves as the foundational logic for the `fps` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package fundpool
