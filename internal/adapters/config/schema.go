package config

import (
	"encoding/json"
	"fmt"

	"go.trai.ch/klse/internal/core/domain"
)

// TaskDocument represents the structure of the klse.json task file.
type TaskDocument struct {
	Task map[string]json.RawMessage `json:"task"`
}

// SettingsDocument represents the structure of the klse.yaml settings file.
type SettingsDocument struct {
	Shell     string              `yaml:"shell"`
	Cache     CacheDocument       `yaml:"cache"`
	Compilers map[string][]string `yaml:"compilers"`
}

// CacheDocument is the cache section of klse.yaml.
type CacheDocument struct {
	Policy string `yaml:"policy"`
}

var commandKeys = []string{domain.PosixKey, domain.WindowsKey, domain.GenericKey}

// decodeNode converts one task object into a TaskNode. Keys other than the
// command keys and "childs" are ignored.
func decodeNode(name string, raw json.RawMessage) (*domain.TaskNode, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("task %q: %w", name, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("task %q: expected an object, got null", name)
	}

	node := &domain.TaskNode{Commands: make(map[string]string)}

	for _, key := range commandKeys {
		value, ok := fields[key]
		if !ok {
			continue
		}
		var cmd string
		if err := json.Unmarshal(value, &cmd); err != nil {
			return nil, fmt.Errorf("task %q: %q must be a string", name, key)
		}
		node.Commands[key] = cmd
	}

	childs, ok := fields[domain.ChildrenKey]
	if !ok {
		return node, nil
	}

	var rawChildren map[string]json.RawMessage
	if err := json.Unmarshal(childs, &rawChildren); err != nil {
		return nil, fmt.Errorf("task %q: %q must be an object", name, domain.ChildrenKey)
	}
	if len(rawChildren) == 0 {
		return node, nil
	}

	node.Children = make(map[string]*domain.TaskNode, len(rawChildren))
	for childName, childRaw := range rawChildren {
		child, err := decodeNode(name+"."+childName, childRaw)
		if err != nil {
			return nil, err
		}
		node.Children[childName] = child
	}

	return node, nil
}
