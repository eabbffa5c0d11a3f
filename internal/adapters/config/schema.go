package config

import "gopkg.in/yaml.v3"

// Buildfile represents the structure of the cbuild.yaml configuration file.
type Buildfile struct {
	Compiler string     `yaml:"compiler"`
	Src      StringList `yaml:"src"`
	Bin      string     `yaml:"bin"`
	Out      string     `yaml:"out"`
	CFlags   []string   `yaml:"cflags"`
	LDFlags  []string   `yaml:"ldflags"`
}

// StringList accepts either a single scalar or a sequence of strings, so
// the common single-directory case reads naturally:
//
//	src: examples
//	src: [examples, tools]
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = []string{s}
		return nil
	}

	var items []string
	if err := value.Decode(&items); err != nil {
		return err
	}
	*l = items
	return nil
}
