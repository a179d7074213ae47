// Package commands defines the countdown CLI.
//
// Commands
//
//   - show    Print the Thanksgiving and Christmas countdowns once
//   - watch   Re-render the countdowns on every tick until interrupted
//   - dates   List resolved holiday dates for a range of years
//
// # Implementation
//
// The root command loads configuration from the environment (and .env) and
// installs a stderr logger before any subcommand runs, so the rendered
// countdown on stdout stays clean. Every subcommand evaluates a single
// captured moment per render; --at pins that moment for reproducible output.
package commands
