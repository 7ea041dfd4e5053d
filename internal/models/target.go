package models

// Target is a user-defined skill target that overrides or extends the built-in tables.
type Target struct {
	ID        string             `json:"id" bson:"_id" example:"65a4f1c2e4b0a1b2c3d4e5f6"`
	UserEmail string             `json:"user_email" bson:"user_email" example:"coach@example.com"`
	Role      string             `json:"role" bson:"role" example:"midfielder"`
	Name      *string            `json:"name,omitempty" bson:"name,omitempty" example:"MyU21"`
	Variant   string             `json:"variant" bson:"variant" example:"Normal"`
	Stats     map[string]float64 `json:"stats" bson:"stats"`
}

// TargetsResponse wraps a collection of targets.
type TargetsResponse struct {
	Targets []Target `json:"targets"`
}
