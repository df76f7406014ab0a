// Package commands defines the numsys CLI.
//
// Commands
//
//   - convert   Write a numeral in another base
//   - add       Add two numerals of the same base
//   - mul       Multiply two numerals and print the long multiplication
//   - sheet     Generate a problem sheet followed by its answers
//
// # Configuration
//
// The root command reads NUMSYS_BASE, NUMSYS_LANG, NUMSYS_LOG_LEVEL and
// NUMSYS_SEED from the environment before any subcommand runs.
// Flags override the environment.
// Logs are written to stderr, results to stdout.
package commands
