package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/catalog/internal/errors"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLen    int
		required  bool
		expected  string
		errDetail string
	}{
		{
			name:     "trims surrounding whitespace",
			value:    "  Laptop  ",
			maxLen:   100,
			required: true,
			expected: "Laptop",
		},
		{
			name:      "required blank",
			value:     "   ",
			maxLen:    100,
			required:  true,
			errDetail: "Name is required and cannot be blank",
		},
		{
			name:     "optional blank",
			value:    " ",
			maxLen:   100,
			required: false,
			expected: "",
		},
		{
			name:      "too long after trim",
			value:     strings.Repeat("a", 101),
			maxLen:    100,
			required:  true,
			errDetail: "Name exceeds maximum length of 100",
		},
		{
			name:     "exactly max length",
			value:    " " + strings.Repeat("a", 100) + " ",
			maxLen:   100,
			required: true,
			expected: strings.Repeat("a", 100),
		},
		{
			name:      "html tag",
			value:     "<script>alert(1)</script>",
			maxLen:    100,
			required:  true,
			errDetail: "Name contains invalid characters (HTML tags not allowed)",
		},
		{
			name:      "lone angle bracket",
			value:     "a > b",
			maxLen:    100,
			required:  true,
			errDetail: "Name contains invalid characters (HTML tags not allowed)",
		},
		{
			name:      "control character",
			value:     "bad\x00value",
			maxLen:    100,
			required:  true,
			errDetail: "Name contains restricted control characters",
		},
		{
			name:     "allowed whitespace controls",
			value:    "line one\nline two\tend",
			maxLen:   100,
			required: true,
			expected: "line one\nline two\tend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Sanitize(tt.value, "Name", tt.maxLen, tt.required)
			if tt.errDetail != "" {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
				detail, ok := apperrors.Detail(err)
				require.True(t, ok)
				assert.Equal(t, tt.errDetail, detail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
