package catalog

import "errors"

var (
	// ErrEmptyCatalog indicates a catalog without presets.
	ErrEmptyCatalog = errors.New("catalog: no presets")
	// ErrPresetIndex indicates an index outside the catalog.
	ErrPresetIndex = errors.New("catalog: preset index out of range")
	// ErrUnknownPreset indicates a preset name not present in the catalog.
	ErrUnknownPreset = errors.New("catalog: unknown preset")
	// ErrInvalidCall indicates a call whose kind or parameters cannot be played.
	ErrInvalidCall = errors.New("catalog: invalid call")
)
