package skill

import (
	"time"

	"github.com/google/uuid"
)

// Skill is an entry of the selectable skill catalogue.
type Skill struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// DefaultCatalogue lists the labels offered on the intake forms.
var DefaultCatalogue = []string{
	"Plumbing",
	"Carpenter",
	"Electrician",
	"Security Guard",
	"Maid",
	"Cook",
}
