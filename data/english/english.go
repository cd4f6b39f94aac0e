// Package english embeds a small, hand-seeded pretrained Model for
// English, so callers don't have to train one from their own corpus
// before tokenizing.
package english

import (
	_ "embed"
	"fmt"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/qwwqe/punkt/model"
)

//go:embed english.yaml
var seedData []byte

type seed struct {
	Language         string     `yaml:"language"`
	Abbreviations    []string   `yaml:"abbreviations"`
	SentenceStarters []string   `yaml:"sentence_starters"`
	Collocations     [][]string `yaml:"collocations"`
}

// Loader decodes the embedded English seed data into a Model. It
// implements model.Loader.
type Loader struct{}

// Load decodes the embedded dataset into a fresh Model.
func (Loader) Load() (*model.Model, error) {
	var s seed
	if err := yaml.Unmarshal(seedData, &s); err != nil {
		return nil, fmt.Errorf("english: decode seed data: %w", err)
	}

	if _, err := language.Parse(s.Language); err != nil {
		return nil, fmt.Errorf("english: invalid language tag %q: %w", s.Language, err)
	}

	m := model.New()

	for _, abbrev := range s.Abbreviations {
		m.InsertAbbreviation(abbrev)
	}
	for _, starter := range s.SentenceStarters {
		m.InsertSentenceStarter(starter)
	}
	for _, pair := range s.Collocations {
		if len(pair) != 2 {
			continue
		}
		m.InsertCollocation(pair[0], pair[1])
	}

	return m, nil
}

// Load is a package-level convenience wrapping Loader{}.Load.
func Load() (*model.Model, error) {
	return Loader{}.Load()
}
