package assets

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/strings.yaml
var stringsYAML []byte

// Strings is every piece of user-facing text.
type Strings struct {
	Title struct {
		Heading    string   `yaml:"heading"`
		Lines      []string `yaml:"lines"`
		Hint       string   `yaml:"hint"`
		Start      string   `yaml:"start"`
		Exit       string   `yaml:"exit"`
		Fullscreen string   `yaml:"fullscreen"`
	} `yaml:"title"`
	HUD struct {
		Life string `yaml:"life"` // printf format with one %d
		Boss string `yaml:"boss"`
	} `yaml:"hud"`
	Result struct {
		GameOver  string `yaml:"game_over"`
		GameClear string `yaml:"game_clear"`
		Hint      string `yaml:"hint"`
	} `yaml:"result"`
}

// ParseStrings decodes and validates a strings document.
func ParseStrings(data []byte) (*Strings, error) {
	var s Strings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse strings: %w", err)
	}

	required := map[string]string{
		"title.heading":     s.Title.Heading,
		"title.hint":        s.Title.Hint,
		"title.start":       s.Title.Start,
		"title.exit":        s.Title.Exit,
		"hud.life":          s.HUD.Life,
		"result.game_over":  s.Result.GameOver,
		"result.game_clear": s.Result.GameClear,
	}
	for key, v := range required {
		if v == "" {
			return nil, fmt.Errorf("parse strings: %s is empty", key)
		}
	}
	return &s, nil
}

var text *Strings

// Text returns the embedded UI strings, parsing them on first use.
func Text() *Strings {
	if text == nil {
		s, err := ParseStrings(stringsYAML)
		if err != nil {
			panic(err)
		}
		text = s
	}
	return text
}
