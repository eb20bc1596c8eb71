package ruleset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// skillFile is the on-disk shape of a campaign skill YAML file.
type skillFile struct {
	Skills []*SkillDef `yaml:"skills"`
}

// LoadSkillDefs reads every .yaml/.yml file in dir and parses each as a
// campaign skill file, validating every definition.
//
// Precondition: dir must be a readable directory path.
// Postcondition: returns all parsed definitions in file order, or a
// non-nil error.
func LoadSkillDefs(dir string) ([]*SkillDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading skill directory %s: %w", dir, err)
	}
	var defs []*SkillDef
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var f skillFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing skill file %s: %w", path, err)
		}
		for _, def := range f.Skills {
			if err := def.Validate(); err != nil {
				return nil, fmt.Errorf("in %s: %w", path, err)
			}
		}
		defs = append(defs, f.Skills...)
	}
	return defs, nil
}
