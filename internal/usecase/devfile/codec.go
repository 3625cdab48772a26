package devfile

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bnema/devfile-wizard/internal/domain"
)

// The wire types fix the key order of the serialized document. Field order
// here is output order.

type wireDevfile struct {
	SchemaVersion string          `yaml:"schemaVersion"`
	Metadata      wireMetadata    `yaml:"metadata"`
	Components    []wireComponent `yaml:"components,omitempty"`
	Commands      []wireCommand   `yaml:"commands,omitempty"`
}

type wireMetadata struct {
	Name string `yaml:"name"`
}

type wireComponent struct {
	Name      string         `yaml:"name"`
	Container *wireContainer `yaml:"container,omitempty"`
	Volume    *wireVolume    `yaml:"volume,omitempty"`
}

type wireContainer struct {
	Image         string         `yaml:"image,omitempty"`
	MemoryRequest quantity       `yaml:"memoryRequest,omitempty"`
	MemoryLimit   quantity       `yaml:"memoryLimit,omitempty"`
	CPURequest    quantity       `yaml:"cpuRequest,omitempty"`
	CPULimit      quantity       `yaml:"cpuLimit,omitempty"`
	MountSources  bool           `yaml:"mountSources,omitempty"`
	Endpoints     []wireEndpoint `yaml:"endpoints,omitempty"`
	Env           []wireEnv      `yaml:"env,omitempty"`
}

type wireVolume struct {
	Size string `yaml:"size,omitempty"`
}

type wireEndpoint struct {
	Exposure   string `yaml:"exposure,omitempty"`
	Name       string `yaml:"name"`
	Protocol   string `yaml:"protocol,omitempty"`
	TargetPort int    `yaml:"targetPort"`
}

// Value has no omitempty: an empty value is kept as "".
type wireEnv struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type wireCommand struct {
	ID   string    `yaml:"id"`
	Exec *wireExec `yaml:"exec,omitempty"`
}

type wireExec struct {
	Label       string `yaml:"label,omitempty"`
	Component   string `yaml:"component"`
	CommandLine string `yaml:"commandLine"`
	WorkingDir  string `yaml:"workingDir,omitempty"`
}

// quantity is a resource amount such as 512Mi or 0.5. It is always written
// single quoted so that values like 1 or 0.5 stay strings.
type quantity string

func (q quantity) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.SingleQuotedStyle,
		Value: string(q),
	}, nil
}

// Serialize renders d in its canonical form. The output is deterministic and
// always ends with a newline.
func Serialize(d *domain.Devfile) ([]byte, error) {
	if d == nil {
		return nil, domain.ErrNoDevfile
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toWire(d)); err != nil {
		return nil, fmt.Errorf("failed to encode devfile: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode devfile: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse decodes raw YAML into the document model. It does not validate:
// callers that read untrusted content go through Validator.
func Parse(raw []byte) (*domain.Devfile, error) {
	var w wireDevfile
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("failed to decode devfile: %w", err)
	}
	return fromWire(&w), nil
}

func toWire(d *domain.Devfile) *wireDevfile {
	w := &wireDevfile{
		SchemaVersion: d.SchemaVersion,
		Metadata:      wireMetadata{Name: d.Metadata.Name},
	}

	for _, c := range d.Components {
		wc := wireComponent{Name: c.Name}
		switch {
		case c.Container != nil:
			wc.Container = containerToWire(c.Container)
		case c.Volume != nil:
			wc.Volume = &wireVolume{Size: c.Volume.Size}
		}
		w.Components = append(w.Components, wc)
	}

	for _, cmd := range d.Commands {
		wc := wireCommand{ID: cmd.ID}
		if cmd.Exec != nil {
			wc.Exec = &wireExec{
				Label:       cmd.Exec.Label,
				Component:   cmd.Exec.Component,
				CommandLine: cmd.Exec.CommandLine,
				WorkingDir:  cmd.Exec.WorkingDir,
			}
		}
		w.Commands = append(w.Commands, wc)
	}

	return w
}

func containerToWire(c *domain.Container) *wireContainer {
	wc := &wireContainer{
		Image:         c.Image,
		MemoryRequest: quantity(c.MemoryRequest),
		MemoryLimit:   quantity(c.MemoryLimit),
		CPURequest:    quantity(c.CPURequest),
		CPULimit:      quantity(c.CPULimit),
		MountSources:  c.MountSources,
	}
	for _, e := range c.Endpoints {
		wc.Endpoints = append(wc.Endpoints, wireEndpoint{
			Exposure:   string(e.Exposure),
			Name:       e.Name,
			Protocol:   e.Protocol,
			TargetPort: e.TargetPort,
		})
	}
	for _, v := range c.Env {
		wc.Env = append(wc.Env, wireEnv{Name: v.Name, Value: v.Value})
	}
	return wc
}

func fromWire(w *wireDevfile) *domain.Devfile {
	d := &domain.Devfile{
		SchemaVersion: w.SchemaVersion,
		Metadata:      domain.Metadata{Name: w.Metadata.Name},
		Components:    make([]domain.Component, 0, len(w.Components)),
		Commands:      make([]domain.Command, 0, len(w.Commands)),
	}

	for _, wc := range w.Components {
		c := domain.Component{Name: wc.Name}
		if wc.Container != nil {
			c.Container = containerFromWire(wc.Container)
		}
		if wc.Volume != nil {
			c.Volume = &domain.Volume{Size: wc.Volume.Size}
		}
		d.Components = append(d.Components, c)
	}

	for _, wc := range w.Commands {
		cmd := domain.Command{ID: wc.ID}
		if wc.Exec != nil {
			cmd.Exec = &domain.ExecCommand{
				Label:       wc.Exec.Label,
				Component:   wc.Exec.Component,
				CommandLine: wc.Exec.CommandLine,
				WorkingDir:  wc.Exec.WorkingDir,
			}
		}
		d.Commands = append(d.Commands, cmd)
	}

	return d
}

func containerFromWire(wc *wireContainer) *domain.Container {
	c := &domain.Container{
		Image:         wc.Image,
		MemoryRequest: string(wc.MemoryRequest),
		MemoryLimit:   string(wc.MemoryLimit),
		CPURequest:    string(wc.CPURequest),
		CPULimit:      string(wc.CPULimit),
		MountSources:  wc.MountSources,
	}
	for _, e := range wc.Endpoints {
		c.Endpoints = append(c.Endpoints, domain.Endpoint{
			Name:       e.Name,
			TargetPort: e.TargetPort,
			Exposure:   domain.Exposure(e.Exposure),
			Protocol:   e.Protocol,
		})
	}
	for _, v := range wc.Env {
		c.Env = append(c.Env, domain.EnvVar{Name: v.Name, Value: v.Value})
	}
	return c
}
