package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/spatialtx/datastore/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	t.Parallel()
	err := errors.New(errors.RecordNotFound, "alice.Bob", "thing not found")
	wrapped := errors.Wrap(err, "outer.Op")

	tests := []struct {
		name     string
		template *errors.Template
		err      error
		want     bool
	}{
		{"nil-template", nil, err, false},
		{"nil-err", errors.T(errors.RecordNotFound), nil, false},
		{"not-domain-err", errors.T(errors.RecordNotFound), stderrors.New("plain"), false},
		{"match-code", errors.T(errors.RecordNotFound), err, true},
		{"mismatch-code", errors.T(errors.NotUnique), err, false},
		{"match-op", errors.T(errors.Op("alice.Bob")), err, true},
		{"mismatch-op", errors.T(errors.Op("carol.Dan")), err, false},
		{"match-msg", errors.T("thing not found"), err, true},
		{"match-kind", errors.T(errors.Search), err, true},
		{"mismatch-kind", errors.T(errors.Integrity), err, false},
		{"match-through-wrap", errors.T(errors.RecordNotFound), wrapped, true},
		{"match-multiple-fields", errors.T(errors.RecordNotFound, errors.Op("alice.Bob"), "thing not found"), err, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Match(tt.template, tt.err))
		})
	}
}
