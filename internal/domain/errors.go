package domain

import "errors"

// ErrCatalogLoad indicates the symptom catalog could not be read.
// Startup-fatal: the assistant cannot answer without its reference set.
var ErrCatalogLoad = errors.New("catalog load failed")

// ErrEmptyVocabulary indicates the catalog yielded no tokens to build
// the vector space from. Startup-fatal.
var ErrEmptyVocabulary = errors.New("empty vocabulary")

// ErrEmptyQuestion indicates a blank question submission.
var ErrEmptyQuestion = errors.New("question is empty")

// ErrEmptyName indicates a blank name on an appointment submission.
var ErrEmptyName = errors.New("name is empty")

// ErrInvalidDate indicates an appointment date that is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid appointment date")

// ErrPersistence indicates a record could not be written durably.
// Recoverable at the UI level; the computed answer is still shown.
var ErrPersistence = errors.New("record persistence failed")
