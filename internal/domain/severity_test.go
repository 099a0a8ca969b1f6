package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input   string
		want    Severity
		wantErr bool
	}{
		{"MAJOR", SeverityMajor, false},
		{"major", SeverityMajor, false},
		{" Critical ", SeverityCritical, false},
		{"indeterminate", SeverityIndeterminate, false},
		{"warning", SeverityWarning, false},
		{"minor", SeverityMinor, false},
		{"cleared", SeverityIndeterminate, true},
		{"", SeverityIndeterminate, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverityEscalate(t *testing.T) {
	tests := []struct {
		in   Severity
		want Severity
	}{
		{SeverityIndeterminate, SeverityWarning},
		{SeverityWarning, SeverityMinor},
		{SeverityMinor, SeverityMajor},
		{SeverityMajor, SeverityCritical},
		{SeverityCritical, SeverityCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Escalate(), "escalate %s", tt.in)
	}
}

func TestSeverityOrdering(t *testing.T) {
	assert.Less(t, int(SeverityIndeterminate), int(SeverityWarning))
	assert.Less(t, int(SeverityWarning), int(SeverityMinor))
	assert.Less(t, int(SeverityMinor), int(SeverityMajor))
	assert.Less(t, int(SeverityMajor), int(SeverityCritical))
}

func TestSeverityText(t *testing.T) {
	assert.Equal(t, "major", SeverityMajor.Attribute())
	assert.Equal(t, "MAJOR", SeverityMajor.String())
	assert.False(t, Severity(42).Valid())

	data, err := json.Marshal(struct {
		S Severity `json:"s"`
	}{SeverityMinor})
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"MINOR"}`, string(data))

	var decoded struct {
		S Severity `json:"s"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"s":"critical"}`), &decoded))
	assert.Equal(t, SeverityCritical, decoded.S)

	assert.Error(t, json.Unmarshal([]byte(`{"s":"loud"}`), &decoded))
}
