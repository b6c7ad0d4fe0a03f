package featureset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		wantErr error
	}{
		{
			name: "valid list",
			in:   []string{"bstr", "bash", "fish", "sh"},
		},
		{
			name: "empty list is valid",
			in:   nil,
		},
		{
			name:    "duplicate name",
			in:      []string{"bash", "fish", "bash"},
			wantErr: ErrDuplicateName,
		},
		{
			name:    "empty name",
			in:      []string{"bash", ""},
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.in...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.in), s.Len())
		})
	}
}

func TestSet_NamesIsACopy(t *testing.T) {
	s := MustNew("a", "b")
	names := s.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, s.Names())
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		subset []string
		want   string
	}{
		{name: "empty subset", subset: nil, want: "''"},
		{name: "single feature", subset: []string{"bstr"}, want: "bstr"},
		{name: "joined without spaces", subset: []string{"bstr", "fish", "sh"}, want: "bstr,fish,sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.subset))
		})
	}
}
