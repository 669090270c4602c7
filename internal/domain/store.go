package domain

import "fmt"

// StoreDescriptor is one catalog entry describing a searchable vector store.
// Timestamps stay in the backend's string form; they are display metadata,
// never parsed.
type StoreDescriptor struct {
	id          string
	name        string
	description string
	provider    string
	createdAt   string
	updatedAt   string
}

// NewStoreDescriptor creates a catalog entry. The id is required; every
// other field is backend metadata and may be empty.
func NewStoreDescriptor(id, name, description, provider, createdAt, updatedAt string) (StoreDescriptor, error) {
	if id == "" {
		return StoreDescriptor{}, fmt.Errorf("store id is required")
	}
	return StoreDescriptor{
		id:          id,
		name:        name,
		description: description,
		provider:    provider,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ID returns the backend store identifier.
func (d *StoreDescriptor) ID() string { return d.id }

// Name returns the display name.
func (d *StoreDescriptor) Name() string { return d.name }

// Description returns the store description.
func (d *StoreDescriptor) Description() string { return d.description }

// Provider returns the backing LLM provider label.
func (d *StoreDescriptor) Provider() string { return d.provider }

// CreatedAt returns the creation timestamp as reported by the backend.
func (d *StoreDescriptor) CreatedAt() string { return d.createdAt }

// UpdatedAt returns the last-update timestamp as reported by the backend.
func (d *StoreDescriptor) UpdatedAt() string { return d.updatedAt }
