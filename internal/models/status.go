package models

// Status values returned as data instead of errors.
const (
	StatusCreated  = "created"
	StatusUpdated  = "updated"
	StatusExists   = "exists"
	StatusDeleted  = "deleted"
	StatusAdded    = "added"
	StatusRemoved  = "removed"
	StatusSaved    = "saved"
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
)

// StatusResponse is the generic result of a mutation.
type StatusResponse struct {
	Status string `json:"status" example:"deleted"`
	ID     string `json:"id,omitempty" example:"65a4f1c2e4b0a1b2c3d4e5f6"`
}

// BatchResult reports the outcome of an import or a sync.
type BatchResult struct {
	Status   string   `json:"status" example:"success"`
	Count    int      `json:"count" example:"42"`
	Skipped  int      `json:"skipped" example:"1"`
	Warnings []string `json:"warnings,omitempty"`
}
