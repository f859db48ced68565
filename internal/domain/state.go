package domain

import (
	"fmt"
	"strings"
)

type ResolutionState int

const (
	NotDetermined ResolutionState = iota
	Installed
	Updated
	NothingChanged
)

var stateNames = map[ResolutionState]string{
	NotDetermined:  "not_determined",
	Installed:      "installed",
	Updated:        "updated",
	NothingChanged: "nothing_changed",
}

func (s ResolutionState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return fmt.Sprintf("state(%d)", int(s))
}

func (s ResolutionState) MarshalText() ([]byte, error) {
	if _, ok := stateNames[s]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, int(s))
	}

	return []byte(s.String()), nil
}

func (s *ResolutionState) UnmarshalText(text []byte) error {
	parsed, err := ParseResolutionState(string(text))
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

func ParseResolutionState(raw string) (ResolutionState, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for state, name := range stateNames {
		if name == normalized {
			return state, nil
		}
	}

	return NotDetermined, fmt.Errorf("%w: %q", ErrUnknownState, raw)
}

// NeedsPersist reports whether the current descriptor must be written back
// as the new last known record.
func NeedsPersist(state ResolutionState) bool {
	return state == Installed || state == Updated
}

type ComparisonPolicy string

const (
	// CompareLabel treats descriptors as equal when their combined labels
	// match.
	CompareLabel ComparisonPolicy = "label"
	// CompareFields compares version and build separately.
	CompareFields ComparisonPolicy = "fields"
)

func ParseComparisonPolicy(raw string) (ComparisonPolicy, error) {
	switch ComparisonPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", CompareLabel:
		return CompareLabel, nil
	case CompareFields:
		return CompareFields, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, raw)
	}
}

// Classify decides the resolution state from the prior and current
// descriptors. A prior record without an app version is a fresh install.
func Classify(prior, current VersionDescriptor, policy ComparisonPolicy) ResolutionState {
	if !prior.HasAppVersion() {
		return Installed
	}

	equal := prior.LabelEqual(current)
	if policy == CompareFields {
		equal = prior.FieldsEqual(current)
	}

	if !equal {
		return Updated
	}

	return NothingChanged
}
