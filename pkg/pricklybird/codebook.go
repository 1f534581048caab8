package pricklybird

import "strings"

// wordList maps each byte value to its word. The list is sorted, so a
// byte value is the alphabetical rank of its word.
var wordList = [256]string{
	"acid", "acre", "anew", "apex", "arms", "atom", "avid", "back", // 0x00
	"bake", "band", "barn", "bath", "beam", "beat", "beef", "bend", // 0x08
	"bike", "bite", "blob", "blue", "bold", "boot", "bowl", "bulk", // 0x10
	"busy", "call", "cape", "case", "cell", "chin", "clam", "clip", // 0x18
	"coat", "cold", "cool", "corn", "crew", "curb", "dare", "dash", // 0x20
	"deal", "deck", "desk", "digs", "dive", "dose", "draw", "duck", // 0x28
	"dune", "each", "east", "eels", "eggs", "envy", "evil", "eyes", // 0x30
	"fade", "fall", "farm", "fawn", "feet", "file", "fine", "fish", // 0x38
	"flag", "flaw", "flea", "flux", "foal", "fuel", "full", "fume", // 0x40
	"fuzz", "gala", "gaps", "gasp", "gems", "gill", "glee", "goal", // 0x48
	"golf", "good", "grew", "grin", "gulf", "hail", "hair", "half", // 0x50
	"hand", "hard", "hash", "haze", "heat", "herb", "hide", "hike", // 0x58
	"hive", "home", "hoof", "hoop", "hose", "howl", "hump", "hush", // 0x60
	"husk", "ibis", "icon", "inch", "iris", "item", "jars", "jeep", // 0x68
	"jets", "join", "jolt", "jury", "jute", "keen", "kelp", "kind", // 0x70
	"king", "kiss", "knit", "lace", "lamb", "lane", "lava", "lean", // 0x78
	"lens", "lint", "load", "logo", "look", "lore", "luck", "lush", // 0x80
	"maid", "male", "maps", "mask", "math", "mean", "memo", "mess", // 0x88
	"meta", "mice", "mine", "moat", "mood", "move", "must", "name", // 0x90
	"neck", "nice", "norm", "nova", "oath", "odor", "onyx", "orca", // 0x98
	"owls", "pact", "pair", "park", "path", "peat", "pens", "pier", // 0xa0
	"pink", "play", "poem", "pond", "pork", "port", "pose", "prow", // 0xa8
	"pure", "quiz", "rail", "rank", "rate", "reed", "rest", "rind", // 0xb0
	"risk", "road", "role", "root", "rugs", "rush", "rust", "sack", // 0xb8
	"sage", "same", "sand", "sane", "seam", "seem", "sent", "shoe", // 0xc0
	"sift", "sink", "skip", "slot", "soap", "sole", "spin", "stay", // 0xc8
	"stop", "sung", "swap", "tale", "tape", "than", "thin", "tile", // 0xd0
	"toes", "tone", "town", "trek", "tuba", "tune", "turf", "tusk", // 0xd8
	"twin", "undo", "urge", "user", "vase", "veal", "veil", "verb", // 0xe0
	"view", "visa", "void", "volt", "wage", "walk", "ware", "warn", // 0xe8
	"wars", "wavy", "weed", "west", "whip", "wild", "wing", "wise", // 0xf0
	"wool", "worm", "yaks", "year", "yell", "yoga", "zinc", "zone", // 0xf8
}

// wordIndex is the case-folded reverse lookup, built once at startup.
var wordIndex = func() map[string]byte {
	m := make(map[string]byte, len(wordList))
	for i, w := range wordList {
		m[w] = byte(i)
	}
	return m
}()

// WordForByte returns the codebook word for a byte value.
func WordForByte(b byte) string {
	return wordList[b]
}

// ByteForWord returns the byte value for a word, ignoring letter case.
// The second return is false when the word is not in the codebook.
func ByteForWord(word string) (byte, bool) {
	b, ok := wordIndex[strings.ToLower(word)]
	return b, ok
}

// Words returns a copy of the full codebook, indexed by byte value.
func Words() [256]string {
	return wordList
}
