package components

// Item kinds, matched against the item effect registry at pickup time.
const (
	ItemPower = "power"
	ItemPoint = "point"
	ItemBomb  = "bomb"
	ItemLife  = "life"
)

// Item is a collectible drop. Collecting flips on when the item magnets
// toward the player (point-of-collection or bomb); PoC-collected point
// items score their maximum value.
type Item struct {
	Kind       string
	Collecting bool
	PoC        bool
}
