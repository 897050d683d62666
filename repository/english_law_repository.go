package repository

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/english_laws.yaml
var englishLawsYAML []byte

// EnglishLawEntry is a statute with an official English translation on the
// National Law Information site. NameKR doubles as the URL path segment.
type EnglishLawEntry struct {
	NameKR string `yaml:"name_kr"`
	NameEN string `yaml:"name_en"`
}

type englishLawTopic struct {
	Name string            `yaml:"name"`
	Laws []EnglishLawEntry `yaml:"laws"`
}

type englishLawFile struct {
	Topics []englishLawTopic `yaml:"topics"`
}

// EnglishLawRepository serves the curated English law entries by topic.
type EnglishLawRepository struct {
	topics  []string
	entries map[string][]EnglishLawEntry
}

// NewEnglishLawRepository loads the embedded English law entries.
func NewEnglishLawRepository() (*EnglishLawRepository, error) {
	return NewEnglishLawRepositoryFromYAML(englishLawsYAML)
}

// NewEnglishLawRepositoryFromYAML builds an English law repository from raw YAML.
func NewEnglishLawRepositoryFromYAML(data []byte) (*EnglishLawRepository, error) {
	var file englishLawFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse English law entries: %w", err)
	}
	if len(file.Topics) == 0 {
		return nil, fmt.Errorf("English law entries declare no topics")
	}

	topics := make([]string, 0, len(file.Topics))
	entries := make(map[string][]EnglishLawEntry, len(file.Topics))
	for _, topic := range file.Topics {
		if topic.Name == "" {
			return nil, fmt.Errorf("English law topic with empty name")
		}
		if _, ok := entries[topic.Name]; ok {
			return nil, fmt.Errorf("duplicate English law topic %q", topic.Name)
		}
		if len(topic.Laws) == 0 {
			return nil, fmt.Errorf("English law topic %q has no entries", topic.Name)
		}
		for _, law := range topic.Laws {
			if law.NameKR == "" {
				return nil, fmt.Errorf("English law entry without name_kr in topic %q", topic.Name)
			}
		}
		topics = append(topics, topic.Name)
		entries[topic.Name] = topic.Laws
	}

	return &EnglishLawRepository{topics: topics, entries: entries}, nil
}

// Topics returns the curated topics in declaration order.
func (r *EnglishLawRepository) Topics() []string {
	return r.topics
}

// Entries returns the curated entries for a topic, nil for unknown topics.
func (r *EnglishLawRepository) Entries(topic string) []EnglishLawEntry {
	return r.entries[topic]
}
