// Package types defines the core domain types for build cost estimation.
package types

// ModuleID uniquely identifies a feature module in the catalog
type ModuleID string

// String returns the string representation
func (id ModuleID) String() string {
	return string(id)
}

// Platform identifies the delivery platform of a build
type Platform string

const (
	PlatformWeb     Platform = "web"
	PlatformMobile  Platform = "mobile"
	PlatformBoth    Platform = "both"
	PlatformUnknown Platform = "unknown"
)

// ParsePlatform maps a raw string onto the closed platform set.
// Anything outside the set is treated as unknown, not rejected.
func ParsePlatform(s string) Platform {
	switch Platform(s) {
	case PlatformWeb, PlatformMobile, PlatformBoth:
		return Platform(s)
	default:
		return PlatformUnknown
	}
}

// AuthLevel identifies the authentication tier of a build
type AuthLevel string

const (
	AuthNone        AuthLevel = "none"
	AuthBasic       AuthLevel = "basic"
	AuthRoles       AuthLevel = "roles"
	AuthMultiTenant AuthLevel = "multi-tenant"
	AuthUnknown     AuthLevel = "unknown"
)

// ParseAuthLevel maps a raw string onto the closed auth set
func ParseAuthLevel(s string) AuthLevel {
	switch AuthLevel(s) {
	case AuthNone, AuthBasic, AuthRoles, AuthMultiTenant:
		return AuthLevel(s)
	default:
		return AuthUnknown
	}
}

// Quality identifies the target quality tier of a build
type Quality string

const (
	QualityPrototype  Quality = "prototype"
	QualityMVP        Quality = "mvp"
	QualityProduction Quality = "production"
	QualityUnknown    Quality = "unknown"
)

// ParseQuality maps a raw string onto the closed quality set
func ParseQuality(s string) Quality {
	switch Quality(s) {
	case QualityPrototype, QualityMVP, QualityProduction:
		return Quality(s)
	default:
		return QualityUnknown
	}
}

// BuildSpec describes a requested project build.
// It is an immutable input value; the engine never mutates it.
type BuildSpec struct {
	// Platform is the delivery platform
	Platform Platform `json:"platform"`

	// AuthLevel is the authentication tier
	AuthLevel AuthLevel `json:"auth_level"`

	// Modules are the module ids directly selected by the user.
	// May be empty; duplicates and unknown ids are tolerated.
	Modules []ModuleID `json:"modules"`

	// Quality is the target quality tier
	Quality Quality `json:"quality"`
}
