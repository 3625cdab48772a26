package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/devfile-wizard/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/devfile-wizard/internal/domain"
)

// Status represents a status type for rendering.
type Status int

const (
	StatusSuccess Status = iota
	StatusError
	StatusWarning
	StatusInfo
)

var badgeStyles = map[Status]lipgloss.Style{
	StatusSuccess: styles.Theme.BadgeSuccess,
	StatusError:   styles.Theme.BadgeError,
	StatusWarning: styles.Theme.BadgeWarning,
	StatusInfo:    styles.Theme.BadgeInfo,
}

// RenderStatusBadge renders label as a badge with background.
func RenderStatusBadge(status Status, label string) string {
	style, ok := badgeStyles[status]
	if !ok {
		style = styles.Theme.BadgeInfo
	}
	return style.Render(label)
}

// StrategyStatus maps an update strategy to how it is shown: saves are
// refused under Forbidden and need confirmation under the Confirm states.
func StrategyStatus(s domain.UpdateStrategy) Status {
	switch s {
	case domain.StrategySilent:
		return StatusSuccess
	case domain.StrategyConfirmUpdate, domain.StrategyConfirmRewrite:
		return StatusWarning
	default:
		return StatusError
	}
}

// ProbeStatus maps a probe result to how it is shown.
func ProbeStatus(r domain.ProbeResult) Status {
	switch r {
	case domain.ProbeExist:
		return StatusSuccess
	case domain.ProbeNotExist:
		return StatusInfo
	default:
		return StatusError
	}
}

// StrategyBadge renders s as a badge.
func StrategyBadge(s domain.UpdateStrategy) string {
	return RenderStatusBadge(StrategyStatus(s), s.String())
}

// ProbeBadge renders r as a badge.
func ProbeBadge(r domain.ProbeResult) string {
	return RenderStatusBadge(ProbeStatus(r), r.String())
}
