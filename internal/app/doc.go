// Package app wires application dependencies for the CLI.
//
// It loads Config from YAML and the environment, builds the logger and
// constructs the identity and round-trip services, exposing them via the
// App struct for commands to use.
package app
