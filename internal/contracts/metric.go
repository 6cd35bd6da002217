package contracts

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Metric is an optional float64. Derived figures (fair value, discount,
// yield) and nullable stored figures use it so that "unavailable" can
// never be confused with zero in threshold comparisons.
//
// The zero value is the undefined metric.
type Metric struct {
	Value float64
	Valid bool
}

// Defined returns a metric holding v
func Defined(v float64) Metric {
	return Metric{Value: v, Valid: true}
}

// MetricFromPtr converts a nullable float (as scanned from the database)
// into a Metric; nil means undefined.
func MetricFromPtr(p *float64) Metric {
	if p == nil {
		return Metric{}
	}
	return Defined(*p)
}

// Ptr returns the metric as a nullable float for database writes
func (m Metric) Ptr() *float64 {
	if !m.Valid {
		return nil
	}
	v := m.Value
	return &v
}

// AtLeast reports whether the metric is defined and >= bound.
// An undefined metric never satisfies a bound (fail-closed).
func (m Metric) AtLeast(bound float64) bool {
	return m.Valid && m.Value >= bound
}

// AtMost reports whether the metric is defined and <= bound
func (m Metric) AtMost(bound float64) bool {
	return m.Valid && m.Value <= bound
}

// String renders the metric for logs and terminal output
func (m Metric) String() string {
	if !m.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", m.Value)
}

// MarshalJSON renders undefined metrics as null
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON accepts null or a number
func (m *Metric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = Metric{}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Defined(v)
	return nil
}
