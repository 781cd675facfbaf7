package circuits

import (
	"errors"
	"fmt"
	"path"
)

var ErrUnknownScheme = errors.New("unknown scheme")

// Artifact is a single file a scheme hands to the Quantum service. Role is the
// key the service expects it under, File the name inside circuit_data.
type Artifact struct {
	Role string
	File string
}

type Metadata struct {
	Id           string
	Registration []Artifact
	Submission   []Artifact
}

// Paths maps an artifact role to its slash separated storage key.
type Paths map[string]string

func (c *Metadata) Dir(root string) string {
	return path.Join(root, c.Id, "circuit_data")
}

func (c *Metadata) Paths(root string) Paths {
	dir := c.Dir(root)
	paths := make(Paths, len(c.Registration)+len(c.Submission))
	for _, a := range c.Registration {
		paths[a.Role] = path.Join(dir, a.File)
	}
	for _, a := range c.Submission {
		paths[a.Role] = path.Join(dir, a.File)
	}
	return paths
}

func (c *Metadata) Artifacts() []Artifact {
	all := make([]Artifact, 0, len(c.Registration)+len(c.Submission))
	all = append(all, c.Registration...)
	return append(all, c.Submission...)
}

func Lookup(id string) (*Metadata, error) {
	for _, m := range All {
		if m.Id == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, id)
}

func Names() []string {
	names := make([]string, len(All))
	for i, m := range All {
		names[i] = m.Id
	}
	return names
}
