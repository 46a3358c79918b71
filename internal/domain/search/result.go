package search

import (
	"mutuals/internal/domain/entity"

	"github.com/google/uuid"
)

// Result is either a Registered or an Unregistered search hit.
type Result interface {
	Tier() Tier
	DisplayName() string
	// Key identifies the person across tiers: profile id or normalised phone.
	Key() string
	// SortID breaks ties between equal display names.
	SortID() string

	isResult()
}

// Registered is a hit backed by a profile.
type Registered struct {
	Profile *entity.Profile
	tier    Tier
}

// NewRegistered creates a registered hit. tier must not be TierUnregistered.
func NewRegistered(profile *entity.Profile, tier Tier) *Registered {
	return &Registered{Profile: profile, tier: tier}
}

func (r *Registered) Tier() Tier          { return r.tier }
func (r *Registered) DisplayName() string { return r.Profile.DisplayName() }
func (r *Registered) Key() string         { return "profile:" + r.Profile.ID.String() }
func (r *Registered) SortID() string      { return r.Profile.ID.String() }
func (*Registered) isResult()             {}

// ContactStub is the minimal view of an address-book entry without a profile.
type ContactStub struct {
	ContactID   uuid.UUID `json:"contact_id"`
	DisplayName string    `json:"display_name"`
	PhoneNumber string    `json:"phone_number"`
}

// Unregistered is a hit backed by an unlinked contact of the caller.
type Unregistered struct {
	Contact ContactStub
}

// NewUnregistered creates an unregistered hit from a caller's contact.
func NewUnregistered(contact *entity.Contact) *Unregistered {
	return &Unregistered{
		Contact: ContactStub{
			ContactID:   contact.ID,
			DisplayName: contact.DisplayName,
			PhoneNumber: contact.PhoneNumber,
		},
	}
}

func (*Unregistered) Tier() Tier            { return TierUnregistered }
func (u *Unregistered) DisplayName() string { return u.Contact.DisplayName }
func (u *Unregistered) Key() string         { return "phone:" + u.Contact.PhoneNumber }
func (u *Unregistered) SortID() string      { return u.Contact.PhoneNumber }
func (*Unregistered) isResult()             {}
