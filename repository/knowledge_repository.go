package repository

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/knowledge.yaml
var knowledgeYAML []byte

// defaultConfidence applies to knowledge entries that do not declare one.
const defaultConfidence = 0.7

// KnowledgeEntry is one canned answer for a (country, intent) pair.
type KnowledgeEntry struct {
	Country     string
	Intent      string
	Answer      string
	Keywords    []string
	Confidence  float64
	RelatedLaws []string
}

type knowledgeEntryYAML struct {
	Country     string   `yaml:"country"`
	Intent      string   `yaml:"intent"`
	Answer      string   `yaml:"answer"`
	Keywords    []string `yaml:"keywords"`
	Confidence  *float64 `yaml:"confidence"`
	RelatedLaws []string `yaml:"related_laws"`
}

type knowledgeFile struct {
	Countries []string             `yaml:"countries"`
	Entries   []knowledgeEntryYAML `yaml:"entries"`
}

// KnowledgeRepository serves the embedded knowledge base. It is loaded once
// at startup and read-only afterwards.
type KnowledgeRepository struct {
	countries []string
	entries   map[string]map[string]KnowledgeEntry
}

// NewKnowledgeRepository loads the embedded knowledge base.
func NewKnowledgeRepository() (*KnowledgeRepository, error) {
	return NewKnowledgeRepositoryFromYAML(knowledgeYAML)
}

// NewKnowledgeRepositoryFromYAML builds a knowledge repository from raw YAML.
func NewKnowledgeRepositoryFromYAML(data []byte) (*KnowledgeRepository, error) {
	var file knowledgeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base: %w", err)
	}
	if len(file.Countries) == 0 {
		return nil, fmt.Errorf("knowledge base declares no countries")
	}

	entries := make(map[string]map[string]KnowledgeEntry)
	for i, raw := range file.Entries {
		if raw.Country == "" || raw.Intent == "" || raw.Answer == "" {
			return nil, fmt.Errorf("knowledge entry %d is missing country, intent, or answer", i)
		}
		confidence := defaultConfidence
		if raw.Confidence != nil {
			confidence = *raw.Confidence
		}
		if confidence < 0 || confidence > 1 {
			return nil, fmt.Errorf("knowledge entry %s/%s has confidence %v outside [0,1]", raw.Country, raw.Intent, confidence)
		}
		if entries[raw.Country] == nil {
			entries[raw.Country] = make(map[string]KnowledgeEntry)
		}
		if _, ok := entries[raw.Country][raw.Intent]; ok {
			return nil, fmt.Errorf("duplicate knowledge entry for %s/%s", raw.Country, raw.Intent)
		}
		entries[raw.Country][raw.Intent] = KnowledgeEntry{
			Country:     raw.Country,
			Intent:      raw.Intent,
			Answer:      raw.Answer,
			Keywords:    raw.Keywords,
			Confidence:  confidence,
			RelatedLaws: raw.RelatedLaws,
		}
	}

	return &KnowledgeRepository{countries: file.Countries, entries: entries}, nil
}

// Lookup returns the entry for a (country, intent) pair, if any. Callers
// handle the fallback to country "general" themselves.
func (r *KnowledgeRepository) Lookup(country, intent string) (KnowledgeEntry, bool) {
	entry, ok := r.entries[country][intent]
	return entry, ok
}

// Countries returns the supported country codes in display order.
func (r *KnowledgeRepository) Countries() []string {
	return r.countries
}
