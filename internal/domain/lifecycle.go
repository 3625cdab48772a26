package domain

// ProbeResult is the outcome of looking for a devfile under the project root.
type ProbeResult int

const (
	ProbeUnknown ProbeResult = iota
	ProbeNotExist
	ProbeExist
	ProbeNotAFile
)

func (r ProbeResult) String() string {
	switch r {
	case ProbeNotExist:
		return "not-exist"
	case ProbeExist:
		return "exist"
	case ProbeNotAFile:
		return "not-a-file"
	default:
		return "unknown"
	}
}

// Probe carries a ProbeResult with the path it refers to. Path is the file
// that was found, or the primary candidate when nothing was found. Err is set
// for ProbeUnknown.
type Probe struct {
	Result ProbeResult
	Path   string
	Err    error
}

// UpdateStrategy governs whether and how a save may write to disk.
type UpdateStrategy int

const (
	StrategyForbidden UpdateStrategy = iota
	StrategySilent
	StrategyConfirmUpdate
	StrategyConfirmRewrite
)

func (s UpdateStrategy) String() string {
	switch s {
	case StrategySilent:
		return "silent"
	case StrategyConfirmUpdate:
		return "confirm-update"
	case StrategyConfirmRewrite:
		return "confirm-rewrite"
	default:
		return "forbidden"
	}
}

// ResolveStrategy maps a probe outcome and, for an existing file, its
// validation outcome to the strategy used by subsequent saves.
func ResolveStrategy(result ProbeResult, valid bool) UpdateStrategy {
	switch result {
	case ProbeNotExist:
		return StrategySilent
	case ProbeExist:
		if valid {
			return StrategySilent
		}
		return StrategyForbidden
	default:
		return StrategyForbidden
	}
}

// Validation is the tagged result of checking raw devfile content. Devfile is
// only set when the content is valid; Reason explains a rejection.
type Validation struct {
	Devfile *Devfile
	Reason  string
}

// Valid reports whether the content was accepted.
func (v Validation) Valid() bool {
	return v.Devfile != nil
}

// Invalid builds a rejected Validation.
func Invalid(reason string) Validation {
	return Validation{Reason: reason}
}

// ValidDevfile builds an accepted Validation.
func ValidDevfile(d *Devfile) Validation {
	return Validation{Devfile: d}
}
