package domain

import "errors"

// ErrMissingDefaultState is returned when the active suffix graph has no start state for a root's category.
var ErrMissingDefaultState = errors.New("no default state for root")

// ErrUnknownSuffix is returned when a suffix name is not registered in the graph.
var ErrUnknownSuffix = errors.New("unknown suffix")

// ErrUnknownSuffixForm is returned when a suffix has no form with the requested template.
var ErrUnknownSuffixForm = errors.New("unknown suffix form")

// ErrUnknownState is returned when a state name is not registered in the graph.
var ErrUnknownState = errors.New("unknown state")

// ErrDuplicateName is returned when a state or suffix name is registered twice.
var ErrDuplicateName = errors.New("duplicate name")

// ErrNoPathForSuffix is returned when a predefined path cannot reach a suffix from its current state.
var ErrNoPathForSuffix = errors.New("no path for suffix")

// ErrAmbiguousRoot is returned when a predefined path root matches more than one lexicon root.
var ErrAmbiguousRoot = errors.New("ambiguous root")

// ErrRootNotFound is returned when a predefined path root is missing from the lexicon.
var ErrRootNotFound = errors.New("root not found")

// ErrPathsNotInitialized is returned when predefined paths are queried before Initialize.
var ErrPathsNotInitialized = errors.New("predefined paths not initialized")

// ErrParseAborted is returned when a parse exceeds the configured candidate limit.
var ErrParseAborted = errors.New("parse aborted")

// ErrUnsupported is returned by operations a component deliberately does not offer.
var ErrUnsupported = errors.New("unsupported operation")

// ErrInvalidLexeme is returned when a dictionary line cannot be parsed.
var ErrInvalidLexeme = errors.New("invalid lexeme")
