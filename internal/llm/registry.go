package llm

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// ModelProfile describes one proxy task's model settings
type ModelProfile struct {
	Task      string `yaml:"task"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

type profileFile struct {
	Profiles []ModelProfile `yaml:"profiles"`
}

// Registry resolves proxy tasks to model profiles loaded from the
// embedded YAML file
type Registry struct {
	profiles map[string]ModelProfile
	mu       sync.RWMutex
}

// NewRegistry loads the embedded model profiles
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/models.yaml")
	if err != nil {
		return nil, fmt.Errorf("read model profiles: %w", err)
	}

	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal model profiles: %w", err)
	}

	r := &Registry{profiles: make(map[string]ModelProfile, len(file.Profiles))}
	for _, p := range file.Profiles {
		r.profiles[p.Task] = p
	}

	return r, nil
}

// Profile returns the model profile for a task
func (r *Registry) Profile(task string) (*ModelProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[task]
	if !ok {
		return nil, fmt.Errorf("unknown task: %s", task)
	}
	return &p, nil
}
