package ethurl

// Profile selects the URI layout.
type Profile uint8

const (
	// ProfileFull renders the "pay-" prefix for ENS targets, the decoded
	// function path and the "@<chainId>" suffix.
	ProfileFull Profile = iota

	// ProfileLegacy renders "ethereum:<target>" followed only by query
	// parameters. No prefix, no function path.
	ProfileLegacy
)

// String returns the profile name.
func (p Profile) String() string {
	switch p {
	case ProfileFull:
		return "full"
	case ProfileLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ChainIDStyle selects how the chain id is rendered.
type ChainIDStyle uint8

const (
	// ChainIDDefault uses the style implied by the profile.
	ChainIDDefault ChainIDStyle = iota

	// ChainIDPath renders "@<chainId>" after the target and function path.
	// A zero chain id is still rendered.
	ChainIDPath

	// ChainIDQuery renders a "chainId=<chainId>" query parameter after the
	// amount parameters. A zero chain id is omitted.
	ChainIDQuery
)

// Option configures an Encoder.
type Option func(*config)

// config holds the encoder configuration.
type config struct {
	profile      Profile
	chainIDStyle ChainIDStyle
	contract     ContractDescriptor
	lenient      bool
	passthrough  bool
}

// defaultConfig returns the default encoder configuration.
func defaultConfig() *config {
	return &config{
		profile: ProfileFull,
	}
}

// resolvedChainIDStyle returns the effective chain id style.
func (c *config) resolvedChainIDStyle() ChainIDStyle {
	if c.chainIDStyle != ChainIDDefault {
		return c.chainIDStyle
	}
	if c.profile == ProfileLegacy {
		return ChainIDQuery
	}
	return ChainIDPath
}

// WithProfile selects the URI profile. Default is ProfileFull.
func WithProfile(p Profile) Option {
	return func(c *config) {
		c.profile = p
	}
}

// WithChainIDStyle overrides the chain id rendering implied by the profile.
func WithChainIDStyle(s ChainIDStyle) Option {
	return func(c *config) {
		c.chainIDStyle = s
	}
}

// WithContract sets the descriptor used to decode call payloads into a
// function path and arguments. Ignored by ProfileLegacy.
func WithContract(d ContractDescriptor) Option {
	return func(c *config) {
		c.contract = d
	}
}

// WithLenientDecode renders a payload whose selector matches no function as
// a plain transfer instead of failing with a DecodeError. Compatibility mode.
func WithLenientDecode() Option {
	return func(c *config) {
		c.lenient = true
	}
}

// WithPassthrough makes a Wrapped contract return the handle's own methods
// for names the ABI doesn't declare, instead of a MethodNotFoundError.
// Compatibility mode.
func WithPassthrough() Option {
	return func(c *config) {
		c.passthrough = true
	}
}
