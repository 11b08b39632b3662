package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderArgs(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantFlags      []string
		wantPositional []string
	}{
		{
			name:           "flags before positional",
			args:           []string{"-serve", "-port", "9090", "lsp"},
			wantFlags:      []string{"-serve", "-port", "9090"},
			wantPositional: []string{"lsp"},
		},
		{
			name:           "positional before flags",
			args:           []string{"lsp", "-serve"},
			wantFlags:      []string{"-serve"},
			wantPositional: []string{"lsp"},
		},
		{
			name:           "value flag consumes next arg",
			args:           []string{"-output", "tour.mmd", "ocp"},
			wantFlags:      []string{"-output", "tour.mmd"},
			wantPositional: []string{"ocp"},
		},
		{
			name:           "equals syntax does not consume",
			args:           []string{"-output=tour.mmd", "ocp"},
			wantFlags:      []string{"-output=tour.mmd"},
			wantPositional: []string{"ocp"},
		},
		{
			name:           "bool flag does not consume positional",
			args:           []string{"-no-browser", "dip"},
			wantFlags:      []string{"-no-browser"},
			wantPositional: []string{"dip"},
		},
		{
			name:           "empty args",
			args:           nil,
			wantFlags:      nil,
			wantPositional: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, positional := reorderArgs(tt.args)
			assert.Equal(t, tt.wantFlags, flags)
			assert.Equal(t, tt.wantPositional, positional)
		})
	}
}

func TestRunDemos_AllInTourOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runDemos(&buf, ""))

	out := buf.String()
	headers := []string{
		"=== S — Single Responsibility ===",
		"=== O — Open/Closed ===",
		"=== L — Liskov Substitution ===",
		"=== I — Interface Segregation ===",
		"=== D — Dependency Inversion ===",
	}
	lastIdx := -1
	for _, h := range headers {
		idx := strings.Index(out, h)
		require.GreaterOrEqual(t, idx, 0, "missing header %q", h)
		assert.Greater(t, idx, lastIdx, "header %q out of order", h)
		lastIdx = idx
	}
}

func TestRunDemos_SinglePrinciple(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runDemos(&buf, "lsp"))

	out := buf.String()
	assert.Contains(t, out, "=== L — Liskov Substitution ===")
	assert.Contains(t, out, "this bird cannot fly; swims instead")
	assert.NotContains(t, out, "Single Responsibility")
}

func TestRunDemos_UnknownPrinciple(t *testing.T) {
	var buf bytes.Buffer
	err := runDemos(&buf, "grasp")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown principle")
}
