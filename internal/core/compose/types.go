package compose

import "gopkg.in/yaml.v3"

// =============================================================================
// Document - Main Output Type
// =============================================================================

// Filename is the fixed relative path of the generated compose file.
const Filename = "docker-compose.yml"

// FormatVersion is the compose file format version emitted at the top of
// every document.
const FormatVersion = "3.1"

// Document is the top-level compose structure: a format version plus an
// insertion-ordered service mapping. It is built fresh on every generation
// call and never mutated after serialization.
type Document struct {
	Version  string   `yaml:"version"`
	Services Services `yaml:"services"`
}

// =============================================================================
// Service Types
// =============================================================================

// Service is a single service definition. Struct order here is emission
// order. A key is present only when it applies to the service type; absence
// means "not applicable", never null.
type Service struct {
	Image       string   `yaml:"image,omitempty"`
	Build       string   `yaml:"build,omitempty"`
	WorkingDir  string   `yaml:"working_dir,omitempty"`
	Volumes     []string `yaml:"volumes,omitempty"`
	Environment []string `yaml:"environment,omitempty"`
	Ports       []string `yaml:"ports,omitempty"`
}

// =============================================================================
// Services - Ordered Mapping
// =============================================================================

// Services maps service name to definition while remembering insertion
// order. Plain Go maps serialize with sorted keys; the compose layout wants
// services in the order the assembler appended them, so marshalling goes
// through an explicit mapping node instead.
type Services struct {
	names []string
	defs  map[string]Service
}

// Add appends a service under name. Adding an existing name replaces the
// definition in place without changing its position.
func (s *Services) Add(name string, def Service) {
	if s.defs == nil {
		s.defs = make(map[string]Service)
	}
	if _, exists := s.defs[name]; !exists {
		s.names = append(s.names, name)
	}
	s.defs[name] = def
}

// Len returns the number of services.
func (s Services) Len() int {
	return len(s.names)
}

// Names returns the service names in insertion order.
func (s Services) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Get returns the definition stored under name.
func (s Services) Get(name string) (Service, bool) {
	def, ok := s.defs[name]
	return def, ok
}

// MarshalYAML emits the services as a mapping node in insertion order.
func (s Services) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range s.names {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		val := &yaml.Node{}
		if err := val.Encode(s.defs[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}
