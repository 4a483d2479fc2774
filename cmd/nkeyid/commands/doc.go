// Package commands defines the nkeyid CLI and wires dependencies for subcommands.
//
// Commands
//
//   - gen        Generate a key pair of a kind
//   - pub        Print the public key for a seed
//   - inspect    Validate identity text and report what it holds
//   - sign       Sign data with a seed
//   - verify     Verify a signature against a public key
//   - roundtrip  Sign, re-import the public key and verify
//   - mnemonic   Print a seed as 24 BIP-39 words
//   - recover    Rebuild a seed from BIP-39 words
//   - seal       Encrypt data for a curve public key
//   - open       Decrypt data from a curve public key
//
// # Implementation
//
// The root command loads configuration and builds the app graph before any
// subcommand runs. Seeds come from --seed, --seed-file or NKEYID_SEED, and
// every key pair a command builds is disposed before it returns.
package commands
