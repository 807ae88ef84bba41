package config

import "github.com/MyCarrier-DevOps/go-nextver/internal/version"

// UserConfig holds the settings a config file or flag layer may provide.
// All fields are pointers so unset values can be distinguished during
// merging.
type UserConfig struct {
	Mode            *string `yaml:"mode"`
	GHCRPackageName *string `yaml:"ghcr-package-name"`
	ResetPolicy     *string `yaml:"calver-reset-policy"`
	Increment       *string `yaml:"semver-increment"`
	UsePRLabels     *bool   `yaml:"use-pr-labels"`
	Token           *string `yaml:"github-token"`
	InitialVersion  *string `yaml:"initial-version"`
	OverrideVersion *string `yaml:"override-version"`
	Repository      *string `yaml:"repository"`
	PRNumber        *int    `yaml:"pr-number"`
}

// Builder merges user config layers over the defaults. Layers added later
// take precedence.
type Builder struct {
	layers []*UserConfig
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a config layer. Nil layers are ignored.
func (b *Builder) Add(c *UserConfig) *Builder {
	if c != nil {
		b.layers = append(b.layers, c)
	}
	return b
}

// Build resolves the merged layers into a Config. Option values are parsed
// here, so a bad enum name in any layer fails the build. Build does not run
// Validate; callers do that after filling in ambient fallbacks.
func (b *Builder) Build() (*Config, error) {
	merged := &UserConfig{}
	for _, layer := range b.layers {
		merged.apply(layer)
	}

	cfg := &Config{
		InitialVersion: DefaultInitialVersion,
	}

	if merged.Mode != nil {
		mode, err := ParseMode(*merged.Mode)
		if err != nil {
			return nil, err
		}
		cfg.Mode = mode
	}
	if merged.ResetPolicy != nil {
		policy, err := version.ParseResetPolicy(*merged.ResetPolicy)
		if err != nil {
			return nil, err
		}
		cfg.ResetPolicy = policy
	}
	if merged.Increment != nil {
		field, err := version.ParseField(*merged.Increment)
		if err != nil {
			return nil, err
		}
		cfg.Increment = field
	}
	if merged.GHCRPackageName != nil {
		cfg.GHCRPackageName = *merged.GHCRPackageName
	}
	if merged.UsePRLabels != nil {
		cfg.UsePRLabels = *merged.UsePRLabels
	}
	if merged.Token != nil {
		cfg.Token = *merged.Token
	}
	if merged.InitialVersion != nil {
		cfg.InitialVersion = *merged.InitialVersion
	}
	if merged.OverrideVersion != nil {
		cfg.OverrideVersion = *merged.OverrideVersion
	}
	if merged.Repository != nil {
		cfg.Repository = *merged.Repository
	}
	if merged.PRNumber != nil {
		cfg.PRNumber = *merged.PRNumber
	}

	return cfg, nil
}

// apply copies every set field of other over the receiver.
func (c *UserConfig) apply(other *UserConfig) {
	if other.Mode != nil {
		c.Mode = other.Mode
	}
	if other.GHCRPackageName != nil {
		c.GHCRPackageName = other.GHCRPackageName
	}
	if other.ResetPolicy != nil {
		c.ResetPolicy = other.ResetPolicy
	}
	if other.Increment != nil {
		c.Increment = other.Increment
	}
	if other.UsePRLabels != nil {
		c.UsePRLabels = other.UsePRLabels
	}
	if other.Token != nil {
		c.Token = other.Token
	}
	if other.InitialVersion != nil {
		c.InitialVersion = other.InitialVersion
	}
	if other.OverrideVersion != nil {
		c.OverrideVersion = other.OverrideVersion
	}
	if other.Repository != nil {
		c.Repository = other.Repository
	}
	if other.PRNumber != nil {
		c.PRNumber = other.PRNumber
	}
}
