package command

// Op identifies one text operation.
type Op int

// Operations, in table order.
const (
	OpReverseSelection Op = iota
	OpSpacesToTabs
	OpTabsToSpaces
	OpEncodeBase64
	OpDecodeBase64
	OpEncodeURL
	OpDecodeURL

	opCount
)

// String returns the canonical command name.
func (o Op) String() string {
	if c, ok := Lookup(o); ok {
		return c.Name
	}
	return "unknown"
}

// SoftTabsEffect describes what an operation does to the soft-tabs setting.
type SoftTabsEffect int

const (
	// SoftTabsUnchanged leaves the setting alone.
	SoftTabsUnchanged SoftTabsEffect = iota
	// SoftTabsOff turns soft tabs off.
	SoftTabsOff
	// SoftTabsOn turns soft tabs on.
	SoftTabsOn
)

// String returns "unchanged", "off" or "on".
func (e SoftTabsEffect) String() string {
	switch e {
	case SoftTabsOff:
		return "off"
	case SoftTabsOn:
		return "on"
	default:
		return "unchanged"
	}
}
