// Package commands defines the consulta-cep CLI and wires dependencies for subcommands.
//
// Commands
//
//   - serve          Start the CEP lookup web form (default)
//   - lookup <cep>   Validate and look up a single CEP, printing the address
//
// # Implementation
//
// The root command loads the environment configuration and builds the lookup
// service (ViaCEP client plus the optional stats store) before any subcommand
// runs. Stats use Redis when CEP_STATS_BACKEND=redis.
package commands
