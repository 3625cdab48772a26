package domain

import (
	"fmt"
	"strings"

	"github.com/bnema/devfile-wizard/pkg/validation"
)

const (
	// SchemaVersion is the devfile schema version written into new documents.
	SchemaVersion = "2.2.0"

	// DefaultDevfileName is used when no better name can be resolved.
	DefaultDevfileName = "devfile-sample"

	// MaxEndpointNameLength is the longest endpoint name the schema accepts.
	MaxEndpointNameLength = 15

	// MaxComponentNameLength is the longest component name the schema accepts.
	MaxComponentNameLength = 63

	commandIDPrefix = "command-"
)

// Exposure describes how an endpoint is exposed on the network.
type Exposure string

const (
	ExposurePublic   Exposure = "public"
	ExposureInternal Exposure = "internal"
	ExposureNone     Exposure = "none"
)

// Exposures lists the supported exposures in the order they are offered.
var Exposures = []Exposure{ExposurePublic, ExposureInternal, ExposureNone}

// ParseExposure converts a raw string to an Exposure.
func ParseExposure(raw string) (Exposure, error) {
	for _, e := range Exposures {
		if string(e) == raw {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidExposure, raw)
}

// Devfile is the canonical in-memory workspace document.
type Devfile struct {
	SchemaVersion string
	Metadata      Metadata
	Components    []Component
	Commands      []Command

	// commandSeq is the highest command counter handed out in this session.
	commandSeq int
}

// Metadata holds document level information.
type Metadata struct {
	Name string
}

// Component is a named unit of the devfile. At most one of Container and
// Volume is expected to be set.
type Component struct {
	Name      string
	Container *Container
	Volume    *Volume
}

// Container describes the runtime of a container component. Resource values
// are free-form strings and are never parsed.
type Container struct {
	Image         string
	MemoryRequest string
	MemoryLimit   string
	CPURequest    string
	CPULimit      string
	MountSources  bool
	Endpoints     []Endpoint
	Env           []EnvVar
}

// Volume describes a volume component.
type Volume struct {
	Size string
}

// Endpoint is a named port exposed by a container.
type Endpoint struct {
	Name       string
	TargetPort int
	Exposure   Exposure
	Protocol   string
}

// EnvVar is an environment variable of a container. An empty Value is valid.
type EnvVar struct {
	Name  string
	Value string
}

// Command is an identified step of the devfile.
type Command struct {
	ID   string
	Exec *ExecCommand
}

// ExecCommand runs a command line inside a container component.
type ExecCommand struct {
	Label       string
	Component   string
	CommandLine string
	WorkingDir  string
}

// NewDevfile creates an empty document with the current schema version.
func NewDevfile(name string) *Devfile {
	return &Devfile{
		SchemaVersion: SchemaVersion,
		Metadata:      Metadata{Name: name},
		Components:    []Component{},
		Commands:      []Command{},
	}
}

// Component returns the component with the given name, or nil.
func (d *Devfile) Component(name string) *Component {
	for i := range d.Components {
		if d.Components[i].Name == name {
			return &d.Components[i]
		}
	}
	return nil
}

// ContainerComponents returns the components backed by a container, in
// document order. The returned pointers are invalidated by AddComponent.
func (d *Devfile) ContainerComponents() []*Component {
	var out []*Component
	for i := range d.Components {
		if d.Components[i].Container != nil {
			out = append(out, &d.Components[i])
		}
	}
	return out
}

// ContainerCount returns the number of container components.
func (d *Devfile) ContainerCount() int {
	return len(d.ContainerComponents())
}

// ValidateComponentName checks that name can be used for a new component.
func (d *Devfile) ValidateComponentName(name string) error {
	if name == "" {
		return fmt.Errorf("component name: %w", ErrEmptyValue)
	}
	if !validation.IsDNSLabel(name, MaxComponentNameLength) {
		return fmt.Errorf("%w: component name %q must consist of lower case alphanumeric characters or '-'", ErrInvalidName, name)
	}
	if d.Component(name) != nil {
		return fmt.Errorf("%w: %s", ErrComponentExists, name)
	}
	return nil
}

// ValidateImage checks that image can be used for a new container. Images are
// compared by reference, so "app" and "app:latest" collide.
func (d *Devfile) ValidateImage(image string) error {
	if image == "" {
		return fmt.Errorf("container image: %w", ErrEmptyValue)
	}
	if err := validation.ValidateImageReference(image); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	for _, c := range d.ContainerComponents() {
		if validation.SameImage(c.Container.Image, image) {
			return fmt.Errorf("%w: %s", ErrImageExists, image)
		}
	}
	return nil
}

// AddComponent appends c to the document. Nothing is changed when the
// component would break an invariant.
func (d *Devfile) AddComponent(c Component) error {
	if err := d.ValidateComponentName(c.Name); err != nil {
		return err
	}
	if c.Container != nil && c.Container.Image == "" {
		return fmt.Errorf("container image: %w", ErrEmptyValue)
	}
	d.Components = append(d.Components, c)
	return nil
}

// ValidateEndpointName checks that name can be used for a new endpoint of c.
func (c *Container) ValidateEndpointName(name string) error {
	if name == "" {
		return fmt.Errorf("endpoint name: %w", ErrEmptyValue)
	}
	if len(name) > MaxEndpointNameLength {
		return fmt.Errorf("%w: %q has %d characters, at most %d are allowed", ErrEndpointNameTooLong, name, len(name), MaxEndpointNameLength)
	}
	if !validation.IsDNSLabel(name, MaxEndpointNameLength) {
		return fmt.Errorf("%w: endpoint name %q must consist of lower case alphanumeric characters or '-'", ErrInvalidName, name)
	}
	for _, e := range c.Endpoints {
		if e.Name == name {
			return fmt.Errorf("%w: %s", ErrEndpointExists, name)
		}
	}
	return nil
}

// ValidateTargetPort checks that port is a valid port not yet exposed by c.
func (c *Container) ValidateTargetPort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: %d is outside 1-65535", ErrInvalidPort, port)
	}
	for _, e := range c.Endpoints {
		if e.TargetPort == port {
			return fmt.Errorf("%w: %d", ErrPortExposed, port)
		}
	}
	return nil
}

// AddEndpoint appends e to the container endpoints.
func (c *Container) AddEndpoint(e Endpoint) error {
	if err := c.ValidateEndpointName(e.Name); err != nil {
		return err
	}
	if err := c.ValidateTargetPort(e.TargetPort); err != nil {
		return err
	}
	if e.Exposure != "" {
		if _, err := ParseExposure(string(e.Exposure)); err != nil {
			return err
		}
	}
	c.Endpoints = append(c.Endpoints, e)
	return nil
}

// ValidateEnvName checks that name can be used for a new variable of c.
func (c *Container) ValidateEnvName(name string) error {
	if name == "" {
		return fmt.Errorf("environment variable name: %w", ErrEmptyValue)
	}
	if !validation.IsEnvName(name) {
		return fmt.Errorf("%w: environment variable name %q must start with a letter or '_' and contain only letters, digits or '_'", ErrInvalidName, name)
	}
	for _, v := range c.Env {
		if v.Name == name {
			return fmt.Errorf("%w: %s", ErrEnvVarExists, name)
		}
	}
	return nil
}

// AddEnv appends v to the container environment.
func (c *Container) AddEnv(v EnvVar) error {
	if err := c.ValidateEnvName(v.Name); err != nil {
		return err
	}
	c.Env = append(c.Env, v)
	return nil
}

// Command returns the command with the given id, or nil.
func (d *Devfile) Command(id string) *Command {
	for i := range d.Commands {
		if d.Commands[i].ID == id {
			return &d.Commands[i]
		}
	}
	return nil
}

// ValidateCommandLabel checks that label can be used for a new command.
func (d *Devfile) ValidateCommandLabel(label string) error {
	if label == "" {
		return fmt.Errorf("command label: %w", ErrEmptyValue)
	}
	for _, c := range d.Commands {
		if c.Exec != nil && c.Exec.Label == label {
			return fmt.Errorf("%w: %s", ErrCommandLabelExists, label)
		}
	}
	return nil
}

// NextCommandID returns the identifier AddCommand would generate. Counters
// only move forward and identifiers already present are skipped.
func (d *Devfile) NextCommandID() string {
	_, id := d.nextCommandSeq()
	return id
}

func (d *Devfile) nextCommandSeq() (int, string) {
	for n := d.commandSeq + 1; ; n++ {
		id := fmt.Sprintf("%s%d", commandIDPrefix, n)
		if d.Command(id) == nil {
			return n, id
		}
	}
}

// AddCommand appends cmd to the document and returns the stored command. An
// empty ID is replaced with a generated one.
func (d *Devfile) AddCommand(cmd Command) (*Command, error) {
	seq := 0
	if cmd.ID == "" {
		seq, cmd.ID = d.nextCommandSeq()
	} else if d.Command(cmd.ID) != nil {
		return nil, fmt.Errorf("%w: %s", ErrCommandExists, cmd.ID)
	}

	if cmd.Exec != nil {
		if cmd.Exec.Label != "" {
			if err := d.ValidateCommandLabel(cmd.Exec.Label); err != nil {
				return nil, err
			}
		}
		if err := d.validateCommandComponent(cmd.Exec.Component); err != nil {
			return nil, err
		}
		if strings.TrimSpace(cmd.Exec.CommandLine) == "" {
			return nil, fmt.Errorf("command line: %w", ErrEmptyValue)
		}
	}

	if seq > d.commandSeq {
		d.commandSeq = seq
	}
	d.Commands = append(d.Commands, cmd)
	return &d.Commands[len(d.Commands)-1], nil
}

func (d *Devfile) validateCommandComponent(name string) error {
	c := d.Component(name)
	if c == nil {
		return fmt.Errorf("%w: %q", ErrComponentNotFound, name)
	}
	if c.Container == nil {
		return fmt.Errorf("%w: %s", ErrNotAContainer, name)
	}
	return nil
}
