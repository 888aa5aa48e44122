// Package review orchestrates the review write path and the trending query.
//
// Service classifies text on every create and edit before handing the record
// to the store, so a persisted sentiment label is always consistent with the
// current text body. Trending reads a point-in-time snapshot of recent
// reviews, scores each candidate book, and ranks the results.
package review
