// Package casing defines key case styles (camelCase, snake_case, PascalCase, kebab-case)
// as stateless transformers, and a registry resolving style names to transformers.
package casing
