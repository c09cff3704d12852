package chess

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// PGN scanning (C14). Grounded on barakmich-chess pgn.go's Scanner: a
// bufio.Scanner-based game-at-a-time reader driven by a small state
// machine over blank-line-separated tag-pair and move-text blocks. This
// is ambient test-fixture tooling — loading real games to drive
// Perft-by-replay and notation round-trip tests — not external-engine
// interop.

// TagPair is a single PGN header field, e.g. [Event "F/S Return Match"].
type TagPair struct {
	Key   string
	Value string
}

// Game is a parsed PGN game: its tag pairs and the SAN move text,
// unparsed against any particular starting position until ReplayGame is
// called on it.
type Game struct {
	TagPairs []TagPair
	Moves    []string
}

var tagPairRegex = regexp.MustCompile(`\[(\w+)\s+"([^"]*)"\]`)
var moveNumberRegex = regexp.MustCompile(`\d+\.(\.\.)?`)
var commentRegex = regexp.MustCompile(`\{[^}]*\}|;.*`)
var resultTokens = map[string]bool{"1-0": true, "0-1": true, "1/2-1/2": true, "*": true}

func decodePGN(raw string) *Game {
	lines := strings.Split(raw, "\n")
	var tagLines, moveLines []string
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if strings.HasPrefix(l, "[") {
			tagLines = append(tagLines, l)
		} else {
			moveLines = append(moveLines, l)
		}
	}

	g := &Game{}
	for _, l := range tagLines {
		if m := tagPairRegex.FindStringSubmatch(l); m != nil {
			g.TagPairs = append(g.TagPairs, TagPair{Key: m[1], Value: m[2]})
		}
	}

	moveText := commentRegex.ReplaceAllString(strings.Join(moveLines, " "), " ")
	moveText = moveNumberRegex.ReplaceAllString(moveText, "")
	for _, tok := range strings.Fields(moveText) {
		if resultTokens[tok] {
			continue
		}
		g.Moves = append(g.Moves, tok)
	}
	return g
}

// ReplayGame plays every move of g against the starting position (or a
// caller-supplied root) and returns the final Position, stopping early
// with an error if any SAN token fails to decode or isn't legal.
func ReplayGame(g *Game, root *Position) (*Position, error) {
	pos := root
	if pos == nil {
		pos, _ = ParseFEN(StartFEN)
	} else {
		pos = pos.Clone()
	}
	for _, san := range g.Moves {
		m, err := DecodeSAN(pos, san)
		if err != nil {
			return pos, err
		}
		pos.MakeMove(m)
	}
	return pos, nil
}

// Scanner reads whitespace-separated PGN games one at a time from an
// io.Reader, splitting on the blank line that follows a game's move text.
type Scanner struct {
	scanner *bufio.Scanner
	err     error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	s.Split(splitPGNGames)
	return &Scanner{scanner: s}
}

// Scan advances to the next game, returning false at EOF or on error.
func (s *Scanner) Scan() bool {
	return s.scanner.Scan()
}

// Next returns the most recently scanned game, parsed.
func (s *Scanner) Next() *Game {
	return decodePGN(s.scanner.Text())
}

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.scanner.Err()
}

// splitPGNGames is a bufio.SplitFunc that yields one game (tag pairs plus
// move text) per token: a game ends at the first blank line that follows a
// line of move text (a non-empty line not starting with "[").
func splitPGNGames(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	text := string(data)
	inMoves := false
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lineStart := strings.LastIndexByte(text[:i], '\n') + 1
			line := strings.TrimSpace(text[lineStart:i])
			if line != "" && !strings.HasPrefix(line, "[") {
				inMoves = true
			}
			if inMoves && line == "" {
				return i + 1, []byte(text[:i]), nil
			}
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
