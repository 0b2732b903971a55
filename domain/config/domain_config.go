package config

import "time"

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// History constraints
	MaxHistorySize int

	// Merge windows: two commands on the same target set collapse into
	// one undo step when the second arrives within the window.
	MoveMergeWindow   time.Duration
	ResizeMergeWindow time.Duration
	TextMergeWindow   time.Duration
	StyleMergeWindow  time.Duration

	// Document constraints
	MaxNodesPerDocument int
	MaxEdgesPerDocument int

	// Z-order settings
	NormalizeDebounce time.Duration

	// Clipboard settings
	PasteOffsetX float64
	PasteOffsetY float64
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		// History constraints
		MaxHistorySize: 100,

		// Merge windows
		MoveMergeWindow:   500 * time.Millisecond,
		ResizeMergeWindow: 500 * time.Millisecond,
		TextMergeWindow:   1500 * time.Millisecond,
		StyleMergeWindow:  1500 * time.Millisecond,

		// Document constraints
		MaxNodesPerDocument: 10000,
		MaxEdgesPerDocument: 50000,

		// Z-order settings
		NormalizeDebounce: 50 * time.Millisecond,

		// Clipboard settings
		PasteOffsetX: 16,
		PasteOffsetY: 16,
	}
}

// Validate checks if the configuration is valid
func (c *DomainConfig) Validate() error {
	return nil
}
