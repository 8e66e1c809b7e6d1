package supabase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStoreError(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "permission denied with code",
			raw:         `(42501) new row violates row-level security policy for table "inquiries"`,
			wantCode:    "42501",
			wantMessage: `new row violates row-level security policy for table "inquiries"`,
		},
		{
			name:        "unique violation",
			raw:         "(23505) duplicate key value violates unique constraint",
			wantCode:    "23505",
			wantMessage: "duplicate key value violates unique constraint",
		},
		{
			name:        "rest-layer code",
			raw:         "(PGRST301) JWT expired",
			wantCode:    "PGRST301",
			wantMessage: "JWT expired",
		},
		{
			name:        "no leading code",
			raw:         "connection refused",
			wantCode:    "",
			wantMessage: "connection refused",
		},
		{
			name:        "parenthesis mid-string is not a code",
			raw:         "timeout (after 5s) talking to the store",
			wantCode:    "",
			wantMessage: "timeout (after 5s) talking to the store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := errors.New(tt.raw)
			pe := mapStoreError(src)
			require.NotNil(t, pe)

			assert.Equal(t, tt.wantCode, pe.Code)
			assert.Equal(t, tt.wantMessage, pe.Message)
			assert.True(t, errors.Is(pe, src), "original error stays wrapped")
		})
	}
}
