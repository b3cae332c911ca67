package domain

// PublicConfig is the secret-free view of the runtime configuration.
type PublicConfig struct {
	AllowedOrigins []string          `json:"allowed_origins"`
	Translator     string            `json:"translator"`
	TranslationTTL string            `json:"translation_cache_ttl"`
	RateLimit      int               `json:"generate_rate_limit"`
	ImageParams    ImageParams       `json:"image_params"`
	Credentials    CredentialsStatus `json:"credentials"`
}

// ImageParams defines the fixed parameters sent to the image provider.
type ImageParams struct {
	Model        string `json:"model"`
	OutputFormat string `json:"output_format"`
	AspectRatio  string `json:"aspect_ratio"`
}

// CredentialsStatus reports which keys are present, never their values.
type CredentialsStatus struct {
	ImageProvider bool `json:"image_provider"`
	Translator    bool `json:"translator"`
}
