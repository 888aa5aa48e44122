// Package domain holds the model types, interfaces, and sentinel errors
// shared across the review engine. It has no dependencies on other internal
// packages so that every layer can import it.
package domain
