// Package encoder implements the spreadsheet compression pipeline:
// structural anchor detection, neighborhood retention, homogeneity
// compression, inverted value indexing, rectangular range merging and
// format/numeric region aggregation.
package encoder

import "fmt"

// Config carries the pipeline tunables. Zero values are not usable;
// start from DefaultConfig.
type Config struct {
	// K is the neighborhood radius around each anchor.
	K int `yaml:"k"`

	// HeaderBoldRatio, HeaderCenterRatio and HeaderUppercaseRatio are the
	// populated-cell fractions above which a row counts as a header.
	HeaderBoldRatio      float64 `yaml:"header_bold_ratio"`
	HeaderCenterRatio    float64 `yaml:"header_center_ratio"`
	HeaderUppercaseRatio float64 `yaml:"header_uppercase_ratio"`

	// MinDensity is the minimum populated-cell density of a candidate box.
	MinDensity float64 `yaml:"min_density"`

	// IoUThreshold is the overlap at which non-maximum suppression
	// discards a lower-scored candidate box.
	IoUThreshold float64 `yaml:"iou_threshold"`

	// HeaderScoreWeight is the per-header-row bonus when scoring boxes.
	HeaderScoreWeight int `yaml:"header_score_weight"`

	// MaxCandidates caps boundary-box enumeration; candidates beyond the
	// cap are dropped in enumeration order.
	MaxCandidates int `yaml:"max_candidates"`

	// MaxRegionSpan bounds the width and height searched when aggregating
	// format regions. Regions larger than the span are reported as
	// multiple adjacent ranges.
	MaxRegionSpan int `yaml:"max_region_span"`
}

// DefaultConfig returns the standard pipeline configuration.
func DefaultConfig() Config {
	return Config{
		K:                    2,
		HeaderBoldRatio:      0.6,
		HeaderCenterRatio:    0.6,
		HeaderUppercaseRatio: 0.6,
		MinDensity:           0.1,
		IoUThreshold:         0.5,
		HeaderScoreWeight:    10,
		MaxCandidates:        100000,
		MaxRegionSpan:        20,
	}
}

// Validate rejects malformed configuration before the pipeline starts.
func (c Config) Validate() error {
	if c.K < 0 {
		return fmt.Errorf("neighborhood radius k must be >= 0, got %d", c.K)
	}
	for _, r := range []struct {
		name  string
		value float64
	}{
		{"header_bold_ratio", c.HeaderBoldRatio},
		{"header_center_ratio", c.HeaderCenterRatio},
		{"header_uppercase_ratio", c.HeaderUppercaseRatio},
		{"min_density", c.MinDensity},
		{"iou_threshold", c.IoUThreshold},
	} {
		if r.value < 0 || r.value > 1 {
			return fmt.Errorf("%s must be in [0,1], got %g", r.name, r.value)
		}
	}
	if c.HeaderScoreWeight < 0 {
		return fmt.Errorf("header_score_weight must be >= 0, got %d", c.HeaderScoreWeight)
	}
	if c.MaxCandidates < 1 {
		return fmt.Errorf("max_candidates must be >= 1, got %d", c.MaxCandidates)
	}
	if c.MaxRegionSpan < 1 {
		return fmt.Errorf("max_region_span must be >= 1, got %d", c.MaxRegionSpan)
	}
	return nil
}
