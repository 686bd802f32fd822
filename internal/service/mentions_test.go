package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/crm/internal/service"
)

func TestExtractMentions(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "no mentions",
			content: "just a note",
			want:    []string{},
		},
		{
			name:    "single mention",
			content: "ping @alice about this",
			want:    []string{"alice"},
		},
		{
			name:    "duplicates collapse",
			content: "hello @alice @alice @bob",
			want:    []string{"alice", "bob"},
		},
		{
			name:    "punctuation terminates the name",
			content: "@alice, @bob: look",
			want:    []string{"alice", "bob"},
		},
		{
			name:    "underscores and digits allowed",
			content: "cc @j_doe42",
			want:    []string{"j_doe42"},
		},
		{
			name:    "bare at sign is not a mention",
			content: "meet @ noon",
			want:    []string{},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := service.ExtractMentions(tt.content)
			require.ElementsMatch(t, tt.want, got)
		})
	}
}
