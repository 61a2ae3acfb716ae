package validator

import (
	"testing"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RegisterInput(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   usecase.RegisterInput
		wantErr string
	}{
		{
			name:  "valid input",
			input: usecase.RegisterInput{Username: "good_name1", Email: "a@b.com", Password: "12345678"},
		},
		{
			name:    "username too short",
			input:   usecase.RegisterInput{Username: "ab", Email: "a@b.com", Password: "12345678"},
			wantErr: "username must be at least 3 characters",
		},
		{
			name:    "username with punctuation",
			input:   usecase.RegisterInput{Username: "bad-name!", Email: "a@b.com", Password: "12345678"},
			wantErr: "username may only contain letters, digits and underscores",
		},
		{
			name:    "bad email",
			input:   usecase.RegisterInput{Username: "goodname", Email: "not-an-email", Password: "12345678"},
			wantErr: "email must be a valid email",
		},
		{
			name:    "password too short",
			input:   usecase.RegisterInput{Username: "goodname", Email: "a@b.com", Password: "short"},
			wantErr: "password must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), tt.wantErr)
		})
	}
}
