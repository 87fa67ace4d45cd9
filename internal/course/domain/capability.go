package domain

import "strings"

// Capability names checked before exposing compose features
const (
	CapabilityCompose         = "compose"
	CapabilitySelectAlternate = "allowalternate"
	CapabilityConfigure       = "configure"
)

// Role names. Students are the restricted role: they may compose but never
// copy mentors or pick an alternate sender.
const (
	RoleTeacher   = "teacher"
	RoleAssistant = "assistant"
	RoleStudent   = "student"
)

var roleCapabilities = map[string]map[string]bool{
	RoleTeacher: {
		CapabilityCompose:         true,
		CapabilitySelectAlternate: true,
		CapabilityConfigure:       true,
	},
	RoleAssistant: {
		CapabilityCompose:         true,
		CapabilitySelectAlternate: true,
	},
	RoleStudent: {
		CapabilityCompose: true,
	},
}

// RoleHasCapability reports whether the named role carries a capability.
// Role names are matched case-insensitively.
func RoleHasCapability(roleName, capability string) bool {
	caps, ok := roleCapabilities[strings.ToLower(roleName)]
	if !ok {
		return false
	}
	return caps[capability]
}

// IsRestrictedRole reports whether the role is the restricted student role
func IsRestrictedRole(roleName string) bool {
	return strings.ToLower(roleName) == RoleStudent
}
