package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/brandscope/api/pkg/errors"
)

func TestValidateBrandName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "Blue Bottle", want: "Blue Bottle"},
		{name: "trims whitespace", input: "  Joe's Shop  ", want: "Joe's Shop"},
		{name: "minimum length", input: "ab", want: "ab"},
		{name: "maximum length", input: strings.Repeat("a", 100), want: strings.Repeat("a", 100)},
		{name: "multibyte counted as characters", input: strings.Repeat("é", 60), want: strings.Repeat("é", 60)},
		{name: "multibyte at maximum", input: strings.Repeat("漢", 100), want: strings.Repeat("漢", 100)},
		{name: "padded to maximum", input: "  " + strings.Repeat("a", 100) + "  ", want: strings.Repeat("a", 100)},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 101), wantErr: true},
		{name: "multibyte too long", input: strings.Repeat("é", 101), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateBrandName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateIndustry(t *testing.T) {
	for _, industry := range []string{"food", "restaurant", "cafe", "cpg"} {
		assert.NoError(t, ValidateIndustry(industry))
	}

	for _, industry := range []string{"", "tech", "Food", "FOOD", "retail"} {
		err := ValidateIndustry(industry)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, "industry %q", industry)
	}
}
