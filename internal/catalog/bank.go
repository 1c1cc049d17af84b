package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oaz/profiler/internal/competency"
)

// bankFile is the on-disk YAML layout of an item bank.
type bankFile struct {
	Items []bankItem `yaml:"items"`
}

type bankItem struct {
	ID             string   `yaml:"id"`
	Type           string   `yaml:"type"`
	Competency     string   `yaml:"competency"`
	Difficulty     float64  `yaml:"difficulty"`
	Discrimination float64  `yaml:"discrimination"`
	Stem           string   `yaml:"stem"`
	Choices        []string `yaml:"choices,omitempty"`
	AnswerKey      string   `yaml:"answer_key,omitempty"`
	Rubric         string   `yaml:"rubric,omitempty"`
}

// LoadBank reads and validates an item bank from a YAML file.
func LoadBank(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item bank: %w", err)
	}
	return ParseBank(data)
}

// ParseBank parses and validates YAML item bank content.
func ParseBank(data []byte) ([]Item, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse item bank: %w", err)
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("item bank is empty")
	}

	seen := make(map[string]bool, len(f.Items))
	items := make([]Item, 0, len(f.Items))
	for _, bi := range f.Items {
		it := Item{
			ID:             bi.ID,
			Type:           ItemType(bi.Type),
			Competency:     competency.Competency(bi.Competency),
			Difficulty:     bi.Difficulty,
			Discrimination: bi.Discrimination,
			Stem:           bi.Stem,
			Choices:        bi.Choices,
			AnswerKey:      bi.AnswerKey,
			Rubric:         bi.Rubric,
		}
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
		items = append(items, it)
	}
	return items, nil
}
