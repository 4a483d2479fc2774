// Package domain defines the identity model shared across the module.
// It contains plain types (kinds, key arrays, errors) and contracts
// (interfaces) only.
package domain
