package bpe

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is against these, or errors.As against the
// typed errors below when the offending value is needed.
var (
	// ErrInvalidDropout indicates a dropout value outside [0.0, 1.0].
	ErrInvalidDropout = errors.New("dropout must be in [0.0, 1.0]")

	// ErrInvalidCacheCapacity indicates a negative cache capacity.
	ErrInvalidCacheCapacity = errors.New("cache capacity must be >= 0")

	// ErrBadVocabulary indicates the vocab JSON is not an object of
	// string -> non-negative integer.
	ErrBadVocabulary = errors.New("bad vocabulary")

	// ErrMergeTokenOutOfVocabulary indicates a merge rule references a
	// token (or the concatenation of a merge pair) absent from the vocab.
	ErrMergeTokenOutOfVocabulary = errors.New("merge token out of vocabulary")

	// ErrUnkTokenOutOfVocabulary indicates an UNK must be emitted but the
	// configured unk token string is not present in the vocab.
	ErrUnkTokenOutOfVocabulary = errors.New("unk token out of vocabulary")
)

// BadMergesError reports a malformed line in a merges file.
//
// Line is 1-based and counted after blank lines and the optional
// "#version" header line have been filtered out.
type BadMergesError struct {
	Line int
}

func (e *BadMergesError) Error() string {
	return fmt.Sprintf("bad merges: line %d does not split into exactly two tokens", e.Line)
}

// MergeTokenError reports which token a merge rule referenced that is
// missing from the vocab — either one of the pair's inputs or the
// concatenated result.
type MergeTokenError struct {
	Token string
}

func (e *MergeTokenError) Error() string {
	return fmt.Sprintf("merge token %q out of vocabulary", e.Token)
}

func (e *MergeTokenError) Unwrap() error {
	return ErrMergeTokenOutOfVocabulary
}

// UnkTokenError reports the configured unk token that could not be found
// in the vocab at encode time.
type UnkTokenError struct {
	Token string
}

func (e *UnkTokenError) Error() string {
	return fmt.Sprintf("unk token %q out of vocabulary", e.Token)
}

func (e *UnkTokenError) Unwrap() error {
	return ErrUnkTokenOutOfVocabulary
}

// ConfigError reports an invalid Builder configuration.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bpe: config error: %s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newConfigError(field string, value any, err error) error {
	return &ConfigError{Field: field, Value: value, Err: err}
}
