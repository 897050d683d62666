package repository

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/intents.yaml
var intentsYAML []byte

// IntentDefinition groups the static tables for one intent: the detection
// keywords scored by the classifier, the Korean keywords used for National
// Law Information searches, and the suggested follow-up actions.
type IntentDefinition struct {
	Name           string   `yaml:"name"`
	Keywords       []string `yaml:"keywords"`
	SearchKeywords []string `yaml:"search_keywords"`
	Actions        []string `yaml:"actions"`
}

type intentFile struct {
	Intents []IntentDefinition `yaml:"intents"`
}

// IntentRepository serves the embedded per-intent tables. Declaration order
// is preserved; the classifier relies on it for tie-breaking.
type IntentRepository struct {
	intents []IntentDefinition
	byName  map[string]int
}

// NewIntentRepository loads the embedded intent tables.
func NewIntentRepository() (*IntentRepository, error) {
	return NewIntentRepositoryFromYAML(intentsYAML)
}

// NewIntentRepositoryFromYAML builds an intent repository from raw YAML.
func NewIntentRepositoryFromYAML(data []byte) (*IntentRepository, error) {
	var file intentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse intent tables: %w", err)
	}
	if len(file.Intents) == 0 {
		return nil, fmt.Errorf("intent tables declare no intents")
	}

	byName := make(map[string]int, len(file.Intents))
	for i, def := range file.Intents {
		if def.Name == "" {
			return nil, fmt.Errorf("intent %d has no name", i)
		}
		if len(def.Keywords) == 0 {
			return nil, fmt.Errorf("intent %q has no detection keywords", def.Name)
		}
		if _, ok := byName[def.Name]; ok {
			return nil, fmt.Errorf("duplicate intent %q", def.Name)
		}
		byName[def.Name] = i
	}

	return &IntentRepository{intents: file.Intents, byName: byName}, nil
}

// All returns every intent definition in declaration order.
func (r *IntentRepository) All() []IntentDefinition {
	return r.intents
}

// SearchKeywords returns the Korean statute-search keywords for an intent,
// nil when the intent has none.
func (r *IntentRepository) SearchKeywords(intent string) []string {
	if i, ok := r.byName[intent]; ok {
		return r.intents[i].SearchKeywords
	}
	return nil
}

// SuggestedActions returns the follow-up actions shown with replies for an
// intent, nil when the intent has none.
func (r *IntentRepository) SuggestedActions(intent string) []string {
	if i, ok := r.byName[intent]; ok {
		return r.intents[i].Actions
	}
	return nil
}
