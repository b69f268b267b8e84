package scrape

import (
	"reflect"
	"testing"

	"jobfinder-engine/internal/domain"
)

func TestParseTargets(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []domain.Target
	}{
		{
			name: "annotated lever",
			text: "acme (lever)",
			want: []domain.Target{{Platform: "lever", Company: "acme"}},
		},
		{
			name: "annotated greenhouse mixed case",
			text: "acme (Greenhouse)",
			want: []domain.Target{{Platform: "greenhouse", Company: "acme"}},
		},
		{
			name: "unannotated defaults to lever",
			text: "acme",
			want: []domain.Target{{Platform: "lever", Company: "acme"}},
		},
		{
			name: "unknown tag stays in identifier",
			text: "acme (workday)",
			want: []domain.Target{{Platform: "lever", Company: "acme (workday)"}},
		},
		{
			name: "padding and uppercase tag",
			text: "  initech ( LEVER )  ",
			want: []domain.Target{{Platform: "lever", Company: "initech"}},
		},
		{
			name: "blank and whitespace lines skipped",
			text: "\n   \nacme (lever)\n\n",
			want: []domain.Target{{Platform: "lever", Company: "acme"}},
		},
		{
			name: "tag without identifier skipped",
			text: "(lever)",
			want: nil,
		},
		{
			name: "crlf input",
			text: "acme (lever)\r\nglobex (greenhouse)\r\n",
			want: []domain.Target{
				{Platform: "lever", Company: "acme"},
				{Platform: "greenhouse", Company: "globex"},
			},
		},
		{
			name: "multi line mixed",
			text: "saic (lever)\nandurilindustries (greenhouse)\nopenai (lever)\npalantir (greenhouse)",
			want: []domain.Target{
				{Platform: "lever", Company: "saic"},
				{Platform: "greenhouse", Company: "andurilindustries"},
				{Platform: "lever", Company: "openai"},
				{Platform: "greenhouse", Company: "palantir"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTargets(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTargets(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
