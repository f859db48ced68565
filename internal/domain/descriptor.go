package domain

import "fmt"

const unknownLabel = "unknown"

// VersionDescriptor is one version/build pair. A nil field means the value
// was never recorded or could not be read.
type VersionDescriptor struct {
	AppVersion  *string `json:"app_version,omitempty"`
	BuildNumber *string `json:"build_number,omitempty"`
}

func NewVersionDescriptor(appVersion, buildNumber *string) VersionDescriptor {
	return VersionDescriptor{
		AppVersion:  cloneString(appVersion),
		BuildNumber: cloneString(buildNumber),
	}
}

// Clone returns a descriptor that shares no memory with d.
func (d VersionDescriptor) Clone() VersionDescriptor {
	return NewVersionDescriptor(d.AppVersion, d.BuildNumber)
}

// CombinedLabel formats the descriptor as "1.7(47)". It is empty unless both
// fields are present.
func (d VersionDescriptor) CombinedLabel() string {
	if d.AppVersion == nil || d.BuildNumber == nil {
		return ""
	}

	return fmt.Sprintf("%s(%s)", *d.AppVersion, *d.BuildNumber)
}

func (d VersionDescriptor) HasAppVersion() bool {
	return d.AppVersion != nil
}

// LabelEqual compares combined labels, so two descriptors that are both
// missing a field compare equal.
func (d VersionDescriptor) LabelEqual(other VersionDescriptor) bool {
	return d.CombinedLabel() == other.CombinedLabel()
}

// FieldsEqual compares each field separately. An absent field only equals
// another absent field.
func (d VersionDescriptor) FieldsEqual(other VersionDescriptor) bool {
	return optionalEqual(d.AppVersion, other.AppVersion) && optionalEqual(d.BuildNumber, other.BuildNumber)
}

func (d VersionDescriptor) String() string {
	if label := d.CombinedLabel(); label != "" {
		return label
	}

	return unknownLabel
}

func optionalEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}

	copied := *value
	return &copied
}

// StringPtr returns a pointer to a copy of value.
func StringPtr(value string) *string {
	return &value
}
