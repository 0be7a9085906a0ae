package shell

// Key names follow the toolkit's spelling: upper-case letters, digits, "Space"
// and the punctuation characters themselves.
var baseKeys = map[string]rune{
	"Space": ' ',
	";":     ';',
	"[":     '[',
	"]":     ']',
	"'":     '\'',
	"\\":    '\\',
	",":     ',',
	".":     '.',
	"/":     '/',
	"-":     '-',
	"=":     '=',
	"`":     '`',
}

// shifted maps an unshifted character to the one a US keyboard produces with
// shift held.
var shifted = map[rune]rune{
	'1':  '!',
	'2':  '@',
	'3':  '#',
	'4':  '$',
	'5':  '%',
	'6':  '^',
	'7':  '&',
	'8':  '*',
	'9':  '(',
	'0':  ')',
	';':  ':',
	'[':  '{',
	']':  '}',
	'\'': '"',
	'\\': '|',
	',':  '<',
	'.':  '>',
	'/':  '?',
	'-':  '_',
	'=':  '+',
	'`':  '~',
	' ':  ' ',
}

// printable holds every character the query can contain.
var printable = map[rune]bool{}

func init() {
	for r := 'a'; r <= 'z'; r++ {
		baseKeys[string(r-'a'+'A')] = r
		shifted[r] = r - 'a' + 'A'
	}
	for r := '0'; r <= '9'; r++ {
		baseKeys[string(r)] = r
	}
	for _, r := range baseKeys {
		printable[r] = true
		printable[shifted[r]] = true
	}
}

// KeyChar returns the character typed by the named key with the given shift
// state. Keys outside the printable set report false.
func KeyChar(name string, shift bool) (rune, bool) {
	r, ok := baseKeys[name]
	if !ok {
		return 0, false
	}
	if shift {
		return shifted[r], true
	}
	return r, true
}

// Printable reports whether r can be typed into the query.
func Printable(r rune) bool {
	return printable[r]
}
