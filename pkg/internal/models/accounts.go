package models

import (
	"fmt"
	"hash/fnv"
)

// Account is the public-facing profile of a user. Accounts are created by the
// anonymous sign-in flow and only ever mutated through the profile editor.
type Account struct {
	BaseModel

	Name      string  `json:"name" gorm:"uniqueIndex"`
	Bio       string  `json:"bio"`
	HeaderURL *string `json:"header_url"`

	// DeviceID identifies the device that performed the anonymous sign-in.
	DeviceID string `json:"-" gorm:"uniqueIndex"`

	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
}

// AvatarSeed derives a stable avatar slot from the username. There is no
// stored avatar asset; every renderer derives the same color from the name.
func (v Account) AvatarSeed() uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(v.Name))
	return h.Sum32()
}

// AvatarInitial is the single glyph shown inside the derived avatar.
func (v Account) AvatarInitial() string {
	for _, r := range v.Name {
		return fmt.Sprintf("%c", r)
	}
	return "?"
}
