// Package portfolio provides the analysis core of a personal equity
// portfolio dashboard: it loads historical prices and a transaction ledger
// from delimited text files and derives valuation, profit/loss,
// missed-profit and benchmark-comparison metrics from them.
//
// The core functionalities include:
//   - Data Ingestion: Reading a price-history table and a transaction ledger
//     from CSV files, normalizing heterogeneous column names, date formats
//     and numeric cells into a canonical schema.
//   - Valuation Engine: Aggregating transactions per symbol into positions
//     with cost basis, current value and profit/loss, as of any cutoff date.
//   - Performance Analytics: Comparative returns against a benchmark index,
//     best/worst performing holdings, and profit forfeited by selling before
//     a later price peak.
//
// The pipeline is one-directional and degrades instead of failing: a missing
// file is an empty table, an unparseable cell becomes a zero, and every
// anomaly is recorded in a [DiagnosticList] the caller can inspect. Both
// tables are immutable snapshots once loaded, so every computation is a pure
// function of (prices, ledger, parameters).
//
// This package serves as the foundational logic for the `ept` command-line
// tool, which renders the computed reports as dashboard-style tables and
// cards.
package portfolio
