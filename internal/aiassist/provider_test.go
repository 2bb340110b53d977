package aiassist

import (
	"testing"

	"github.com/cleansweep/cleansweep/internal/safety"
)

func TestParseJudgment(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Judgment
		wantErr bool
	}{
		{
			name: "valid green",
			text: `{"tier": "green", "reason": "Cache files, regenerated on demand."}`,
			want: Judgment{Tier: safety.TierGreen, Reason: "Cache files, regenerated on demand."},
		},
		{
			name: "valid red with padding",
			text: "  {\"tier\": \"RED\", \"reason\": \"System binaries.\"}\n",
			want: Judgment{Tier: safety.TierRed, Reason: "System binaries."},
		},
		{
			name: "markdown fenced",
			text: "```json\n{\"tier\": \"orange\", \"reason\": \"User documents.\"}\n```",
			want: Judgment{Tier: safety.TierOrange, Reason: "User documents."},
		},
		{name: "unknown tier", text: `{"tier": "blue", "reason": "x"}`, wantErr: true},
		{name: "grey rejected", text: `{"tier": "grey", "reason": "x"}`, wantErr: true},
		{name: "empty reason", text: `{"tier": "green", "reason": "  "}`, wantErr: true},
		{name: "not json", text: `the path looks safe to me`, wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseJudgment(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseJudgment(%q) succeeded, want error", tt.text)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseJudgment(%q) failed: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
