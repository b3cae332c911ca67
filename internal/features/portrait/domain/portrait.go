package domain

// ImageDataURIPrefix is prepended to the provider's base64 payload.
const ImageDataURIPrefix = "data:image/jpeg;base64,"

// CharacterRequest describes the travel mate to draw.
// Fields are pointers so that binding can tell a missing field from an empty string.
type CharacterRequest struct {
	Name        *string `json:"name" binding:"required"`
	Personality *string `json:"personality" binding:"required"`
	Appearance  *string `json:"appearance" binding:"required"`
}

// NewCharacterRequest builds a request from plain strings.
func NewCharacterRequest(name, personality, appearance string) *CharacterRequest {
	return &CharacterRequest{Name: &name, Personality: &personality, Appearance: &appearance}
}

// GetName returns the name, or "" when unset.
func (r *CharacterRequest) GetName() string { return deref(r.Name) }

// GetPersonality returns the personality, or "" when unset.
func (r *CharacterRequest) GetPersonality() string { return deref(r.Personality) }

// GetAppearance returns the appearance, or "" when unset.
func (r *CharacterRequest) GetAppearance() string { return deref(r.Appearance) }

// ImageResult is the successful response body.
type ImageResult struct {
	Image string `json:"image"`
}

// NewImageResult wraps a base64 JPEG payload into a data URI.
func NewImageResult(base64Payload string) *ImageResult {
	return &ImageResult{Image: ImageDataURIPrefix + base64Payload}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
