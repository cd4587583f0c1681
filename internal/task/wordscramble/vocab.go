package wordscramble

// Vocabulary is the fixed word pool for the unscramble task. Words are
// uppercase, everyday nouns in the 5-7 letter range so the scramble is
// challenging but solvable in one attempt.
var Vocabulary = []string{
	"MEMORY",
	"BRAIN",
	"FOCUS",
	"RECALL",
	"HEALTH",
	"DOCTOR",
	"GARDEN",
	"ORANGE",
	"PENCIL",
	"MIRROR",
	"WINDOW",
	"SILVER",
}
