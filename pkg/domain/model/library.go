package model

// Library is a registry record mapping a human-readable name to one or more
// documentation sources. The first descriptor in Repos is the default source.
type Library struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Tags        []string               `json:"tags,omitempty"`
	Stars       int                    `json:"stars,omitempty"`
	Repos       []RepositoryDescriptor `json:"repos"`
}
