package ndt

// LabelValidation selects how label values outside the configured pair are
// handled.
type LabelValidation int

const (
	// StrictLabels rejects any label that is neither the positive nor the
	// negative label.
	StrictLabels LabelValidation = iota

	// LenientLabels treats every label other than the positive label as
	// negative.
	LenientLabels
)

// Option configures an operation.
type Option func(*config)

type config struct {
	positiveLabel int
	negativeLabel int
	validation    LabelValidation
}

func defaultConfig() config {
	return config{
		positiveLabel: 1,
		negativeLabel: 0,
		validation:    StrictLabels,
	}
}

func resolveConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPositiveLabel sets the label assigned to positive decisions
// (default: 1). It must differ from the negative label.
func WithPositiveLabel(v int) Option {
	return func(c *config) {
		c.positiveLabel = v
	}
}

// WithNegativeLabel sets the label assigned to negative decisions
// (default: 0). It must differ from the positive label.
func WithNegativeLabel(v int) Option {
	return func(c *config) {
		c.negativeLabel = v
	}
}

// WithLabelValidation sets the validation mode (default: StrictLabels).
func WithLabelValidation(m LabelValidation) Option {
	return func(c *config) {
		c.validation = m
	}
}
