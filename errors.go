package beadgrid

import "errors"

// ErrInvalidSize is returned when grid or cell dimensions are not positive,
// or when rows passed to GridFromRows are ragged.
var ErrInvalidSize = errors.New("invalid size")

// ErrEmptyPalette is returned when an operation needs at least one candidate color.
var ErrEmptyPalette = errors.New("empty palette")

// ErrDuplicateColor is returned when a palette lists the same color twice.
var ErrDuplicateColor = errors.New("duplicate palette color")

// ErrInvalidColor is returned for malformed hex strings and for Empty where a real color is required.
var ErrInvalidColor = errors.New("invalid color")

// ErrDecode is returned when import image data cannot be decoded or sampled.
var ErrDecode = errors.New("image decode failed")

// ErrImportSuperseded is returned by an asynchronous import that was replaced by a newer one.
var ErrImportSuperseded = errors.New("import superseded")
