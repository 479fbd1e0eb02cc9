package llm

import (
	"testing"
)

func TestRegistryProfiles(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	tests := []struct {
		task          string
		wantModel     string
		wantMaxTokens int
		wantErr       bool
	}{
		{task: "cover-letter", wantModel: "llama-3.1-8b-instant", wantMaxTokens: 700},
		{task: "ats-score", wantModel: "llama-3.1-8b-instant", wantMaxTokens: 500},
		{task: "unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.task, func(t *testing.T) {
			profile, err := registry.Profile(tt.task)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Profile: %v", err)
			}
			if profile.Model != tt.wantModel {
				t.Errorf("model: got %s, want %s", profile.Model, tt.wantModel)
			}
			if profile.MaxTokens != tt.wantMaxTokens {
				t.Errorf("max_tokens: got %d, want %d", profile.MaxTokens, tt.wantMaxTokens)
			}
		})
	}
}
