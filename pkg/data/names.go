package data

import "math/rand"

// RiderNames are handles given to a new save when the rider has not picked one.
var RiderNames = []string{
	"Ace", "Blaze", "Comet", "Dash", "Echo", "Flash", "Ghost", "Hawk",
	"Jet", "Kite", "Lynx", "Nova", "Onyx", "Pike", "Quill", "Rook",
	"Spark", "Thorn", "Vega", "Wren", "Zephyr",
}

// RiderName picks one of RiderNames. Equal seeds give equal names.
func RiderName(seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	return RiderNames[rng.Intn(len(RiderNames))]
}
