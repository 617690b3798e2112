package config

// ProxyConfig is the root of ppai_config.yaml.
type ProxyConfig struct {
	GeneralSettings      GeneralSettings   `yaml:"general_settings"`
	Upstream             UpstreamSettings  `yaml:"upstream"`
	EnvironmentVariables map[string]string `yaml:"environment_variables,omitempty"`

	// Overflow captures any unknown top-level YAML fields.
	// Validate() logs a warning per field instead of failing the load.
	Overflow map[string]any `yaml:",inline"`
}

type GeneralSettings struct {
	Port int `yaml:"port,omitempty"`

	// DevMode enables the empty-whitelist license bypass. It must be set
	// deliberately; it is never inferred at runtime.
	DevMode bool `yaml:"dev_mode,omitempty"`

	// LicenseTokens is the comma-separated token whitelist. Supports the
	// os.environ/VAR reference syntax.
	LicenseTokens string `yaml:"license_tokens,omitempty"`

	Overflow map[string]any `yaml:",inline"`
}

type UpstreamSettings struct {
	Gemini  GeminiSettings  `yaml:"gemini,omitempty"`
	YouTube YouTubeSettings `yaml:"youtube,omitempty"`

	Overflow map[string]any `yaml:",inline"`
}

type GeminiSettings struct {
	APIKey  string `yaml:"api_key,omitempty"`
	APIBase string `yaml:"api_base,omitempty"`
	Model   string `yaml:"model,omitempty"`

	Overflow map[string]any `yaml:",inline"`
}

type YouTubeSettings struct {
	APIKey  string `yaml:"api_key,omitempty"`
	APIBase string `yaml:"api_base,omitempty"`

	Overflow map[string]any `yaml:",inline"`
}
