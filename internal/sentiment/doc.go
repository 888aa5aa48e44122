// Package sentiment implements the lexicon-based sentiment classifier.
//
// Classify tokenizes review text, scores its polarity against a valence
// lexicon, and maps the score to a label via two configured thresholds.
// The classifier is pure: no state, no I/O, identical text yields identical labels.
package sentiment
