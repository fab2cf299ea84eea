package round

import "math/bits"

// Category tags a physics body taking part in a contact.
type Category uint32

const (
	CategoryNone        Category = 0
	CategoryPlayer      Category = 1 << 0
	CategoryCollectible Category = 1 << 1
	CategoryForeground  Category = 1 << 2
)

// Contact is the decision taken for a pair of colliding categories.
type Contact int

const (
	ContactIgnored   Contact = iota
	ContactCollected         // Player touched a bucket
	ContactMissed            // A bucket hit the ground
)

// String returns a human-readable name for the contact.
func (c Contact) String() string {
	switch c {
	case ContactCollected:
		return "Collected"
	case ContactMissed:
		return "Missed"
	default:
		return "Ignored"
	}
}

// Classify maps a colliding pair to a contact. Order does not matter.
// Each side must be exactly one tag; combined masks are ignored.
func Classify(a, b Category) Contact {
	if !single(a) || !single(b) {
		return ContactIgnored
	}
	switch a | b {
	case CategoryPlayer | CategoryCollectible:
		return ContactCollected
	case CategoryForeground | CategoryCollectible:
		return ContactMissed
	default:
		return ContactIgnored
	}
}

// HandleContact classifies a pair and applies it. levelComplete is true when
// the contact was a catch that finished the level.
func (c *Controller) HandleContact(a, b Category) (contact Contact, levelComplete bool, err error) {
	contact = Classify(a, b)
	switch contact {
	case ContactCollected:
		levelComplete, err = c.ReportCollected()
	case ContactMissed:
		err = c.ReportMissed()
	}
	return contact, levelComplete, err
}

// single reports whether c is exactly one category tag.
func single(c Category) bool {
	return bits.OnesCount32(uint32(c)) == 1
}
