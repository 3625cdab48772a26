package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/go-connections/nat"

	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/internal/domain"
	"github.com/bnema/devfile-wizard/pkg/logger"
)

const defaultEndpointPort = "8080"

var exposureDetails = map[domain.Exposure]string{
	domain.ExposurePublic:   "Endpoint will be exposed on the public network",
	domain.ExposureInternal: "Endpoint will be exposed internally outside of the main workspace pod",
	domain.ExposureNone:     "Endpoint will not be exposed and is only reachable inside the main workspace pod",
}

// NewEndpoint asks for an endpoint and adds it to a container.
func (s *Service) NewEndpoint(ctx context.Context) error {
	doc, err := s.document()
	if err != nil {
		return err
	}
	if err := s.ensureContainer(ctx, doc); err != nil {
		return cancelled("endpoint", err)
	}

	component, err := s.selectContainer(ctx, doc, "Select a container to which the new endpoint will be added")
	if err != nil {
		return cancelled("endpoint", err)
	}
	container := component.Container

	rawPort, err := s.prompter.Input(ctx, out.InputConfig{
		Message: "Exposed port",
		Default: defaultEndpointPort,
		Validate: func(value string) error {
			port, err := parsePort(value)
			if err != nil {
				return err
			}
			return container.ValidateTargetPort(port)
		},
	})
	if err != nil {
		return cancelled("endpoint", err)
	}
	port, err := parsePort(rawPort)
	if err != nil {
		return err
	}

	name, err := s.prompter.Input(ctx, out.InputConfig{
		Message:  "Endpoint name",
		Default:  fmt.Sprintf("port-%d", port),
		Help:     fmt.Sprintf("Lower case letters, digits and '-', at most %d characters.", domain.MaxEndpointNameLength),
		Validate: container.ValidateEndpointName,
	})
	if err != nil {
		return cancelled("endpoint", err)
	}

	exposure, err := s.selectExposure(ctx)
	if err != nil {
		return cancelled("endpoint", err)
	}

	if err := container.AddEndpoint(domain.Endpoint{
		Name:       name,
		TargetPort: port,
		Exposure:   exposure,
	}); err != nil {
		return err
	}
	logger.Debug("Endpoint added", "component", component.Name, "name", name, "port", port, "exposure", exposure)

	return s.save(ctx, fmt.Sprintf("Endpoint '%s' has been created successfully", name))
}

func (s *Service) selectExposure(ctx context.Context) (domain.Exposure, error) {
	options := make([]out.Option, 0, len(domain.Exposures))
	for _, e := range domain.Exposures {
		options = append(options, out.Option{Label: string(e), Detail: exposureDetails[e]})
	}

	idx, err := s.prompter.Select(ctx, out.SelectConfig{
		Message: "Describe how the port should be exposed on the network",
		Options: options,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(domain.Exposures) {
		return "", domain.ErrUserCancelled
	}
	return domain.Exposures[idx], nil
}

func parsePort(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("exposed port: %w", domain.ErrEmptyValue)
	}
	port, err := nat.ParsePort(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a port number", domain.ErrInvalidPort, value)
	}
	return port, nil
}
