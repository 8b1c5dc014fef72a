// Package fundsheet normalizes loosely-structured spreadsheet exports of
// ETF prices and dividend events into typed fund records with derived
// yield, return, and portfolio-projection metrics.
//
// The exports have no fixed schema: column order, language, and date
// encodings vary per sheet. The package locates the header row by keyword,
// infers column roles by keyword and date-shape heuristics, and degrades
// gracefully on malformed cells instead of failing the batch.
//
// The core functionalities include:
//   - Tolerant tokenizing and column classification of delimited sheet text.
//   - Building normalized fund records against a fixed classification table
//     of instrument codes (three quarterly payout phases, monthly, bond).
//   - Aggregating dividend events per instrument code from a second sheet.
//   - Trailing and estimated forward dividend yield, price return, and
//     dividend-inclusive total return.
//   - A 12-month portfolio projection: estimated-dividend calendar over the
//     payout cycles and linear projected asset curves.
//
// Everything here is synchronous and side-effect free; fetching sheet text
// lives in the fetch subpackage and rendering in renderer. This package
// serves as the foundational logic for the `fsheet` command-line tool.
package fundsheet
