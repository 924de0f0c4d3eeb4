package build

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/teammap/pkg/differ"
	"github.com/agentstation/teammap/pkg/errors"
)

func TestOptions(t *testing.T) {
	opts := New(WithDryRun(true), WithTimeout(time.Minute), WithReslug("u1"), WithReslug("u2"))
	assert.True(t, opts.DryRun)
	assert.Equal(t, time.Minute, opts.Timeout)
	assert.Equal(t, []string{"u1", "u2"}, opts.Reslug)
	assert.NoError(t, opts.Validate())

	defaults := Defaults()
	assert.False(t, defaults.DryRun)
	assert.Empty(t, defaults.Reslug)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		opts *Options
	}{
		{"negative timeout", New(WithTimeout(-time.Second))},
		{"empty reslug id", New(WithReslug(""))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.IsValidationError(tt.opts.Validate()))
		})
	}
}

func TestResultSummary(t *testing.T) {
	r := &Result{Contributors: 3, PagesRendered: 6, Changeset: &differ.Changeset{}}
	assert.False(t, r.HasChanges())
	assert.Equal(t, "3 contributors, 0 redirects, 6 pages, no changes", r.Summary())

	r.DryRun = true
	r.Degraded = true
	r.Changeset = &differ.Changeset{Added: []string{"u1"}, Summary: differ.Summary{Added: 1, TotalChanges: 1}}
	assert.True(t, r.HasChanges())
	assert.Equal(t, "3 contributors, 0 redirects, 6 pages, 1 changes (Dry run) (No publications)", r.Summary())

	var none *Result
	assert.False(t, none.HasChanges())
}
