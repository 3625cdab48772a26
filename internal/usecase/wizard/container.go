package wizard

import (
	"context"
	"fmt"

	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/internal/domain"
	"github.com/bnema/devfile-wizard/pkg/logger"
)

const (
	// DefaultContainerName is suggested for the first container.
	DefaultContainerName = "dev"

	// DefaultContainerImage is suggested for the first container.
	DefaultContainerImage = "quay.io/devfile/universal-developer-image:latest"

	defaultMemoryLimit      = "2048Mi"
	defaultExtraMemoryLimit = "512Mi"
	defaultCPULimit         = "0.5"
)

// NewContainer asks for a container component and adds it to the devfile.
// The memory and CPU limits can be skipped by cancelling their prompt.
func (s *Service) NewContainer(ctx context.Context) error {
	doc, err := s.document()
	if err != nil {
		return err
	}

	first := doc.ContainerCount() == 0

	nameDefault, imageDefault := "", ""
	if first {
		nameDefault, imageDefault = DefaultContainerName, DefaultContainerImage
	}

	name, err := s.prompter.Input(ctx, out.InputConfig{
		Message:  "Container component name",
		Default:  nameDefault,
		Validate: doc.ValidateComponentName,
	})
	if err != nil {
		return cancelled("container", err)
	}

	image, err := s.prompter.Input(ctx, out.InputConfig{
		Message:  "Container image",
		Default:  imageDefault,
		Validate: doc.ValidateImage,
	})
	if err != nil {
		return cancelled("container", err)
	}

	if err := doc.AddComponent(domain.Component{
		Name:      name,
		Container: &domain.Container{Image: image, MountSources: true},
	}); err != nil {
		return err
	}
	logger.Debug("Container component added", "name", name, "image", image)

	memoryDefault := defaultMemoryLimit
	if doc.ContainerCount() > 1 {
		memoryDefault = defaultExtraMemoryLimit
	}

	memory, err := optional(s.prompter.Input(ctx, out.InputConfig{
		Message:  "Memory limit",
		Default:  memoryDefault,
		Help:     "Kubernetes quantity, for example 512Mi or 2Gi. Press Ctrl+C to skip.",
		Validate: notEmpty("memory limit"),
	}))
	if err != nil {
		return err
	}

	cpu, err := optional(s.prompter.Input(ctx, out.InputConfig{
		Message:  "CPU limit",
		Default:  defaultCPULimit,
		Help:     "Kubernetes quantity, for example 0.5 or 500m. Press Ctrl+C to skip.",
		Validate: notEmpty("CPU limit"),
	}))
	if err != nil {
		return err
	}

	container := doc.Component(name).Container
	container.MemoryLimit = memory
	container.CPULimit = cpu

	return s.save(ctx, fmt.Sprintf("Container '%s' has been created successfully", name))
}
