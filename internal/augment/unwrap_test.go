package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{
			name:    "bare object",
			content: `{"summary": "ok"}`,
			want:    `{"summary": "ok"}`,
		},
		{
			name:    "json fence",
			content: "```json\n{\"summary\": \"ok\"}\n```",
			want:    `{"summary": "ok"}`,
		},
		{
			name:    "anonymous fence",
			content: "```\n{\"summary\": \"ok\"}\n```",
			want:    `{"summary": "ok"}`,
		},
		{
			name:    "surrounding whitespace",
			content: "\n\n  {\"a\": 1}  \n",
			want:    `{"a": 1}`,
		},
		{
			name:    "prose is not JSON",
			content: "I could not produce a summary.",
			wantErr: true,
		},
		{
			name:    "fenced garbage",
			content: "```json\nnot json at all\n```",
			wantErr: true,
		},
		{
			name:    "empty",
			content: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := UnwrapJSON(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}
