package faker

// Filler text vocabulary. Plain English words rather than classical
// lorem ipsum so rendered fixtures read naturally in screenshots.

var loremWords = []string{
	"amber", "anchor", "autumn", "basalt", "bramble", "breeze",
	"candle", "canyon", "cedar", "cinder", "clover", "compass",
	"copper", "coral", "crater", "current", "dawn", "drift",
	"echo", "ember", "fable", "feather", "fern", "flint",
	"garnet", "glacier", "grove", "harbor", "hazel", "heather",
	"hollow", "horizon", "ivory", "juniper", "lagoon", "lantern",
	"lichen", "marble", "meadow", "mist", "moss", "night",
	"ochre", "orchard", "pebble", "pine", "prairie", "quarry",
	"raven", "reed", "ridge", "river", "saffron", "shadow",
	"slate", "spruce", "summit", "thicket", "timber", "tundra",
	"valley", "violet", "willow", "winter",
}
