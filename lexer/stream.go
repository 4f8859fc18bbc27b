package lexer

import "github.com/shipsimfan/acsl/acslerr"

// stream is the character-stream abstraction of §4.1: current/peek/advance
// with line and column tracking. Tabs advance column to the next multiple
// of 4, plus 1; newlines reset column to 1 and advance line.
type stream struct {
	runes  []rune
	pos    int
	line   int
	column int
}

func newStream(source string) *stream {
	return &stream{runes: []rune(source), pos: 0, line: 1, column: 1}
}

const eof rune = 0

func (s *stream) currentChar() rune {
	if s.pos >= len(s.runes) {
		return eof
	}
	return s.runes[s.pos]
}

func (s *stream) peekChar() rune {
	if s.pos+1 >= len(s.runes) {
		return eof
	}
	return s.runes[s.pos+1]
}

func (s *stream) position() acslerr.Position {
	return acslerr.Position{Line: s.line, Column: s.column}
}

// advance consumes the current character and returns it, updating line and
// column per the tab/newline rules.
func (s *stream) advance() rune {
	c := s.currentChar()
	if c == eof {
		return eof
	}
	s.pos++

	switch c {
	case '\n':
		s.line++
		s.column = 1
	case '\t':
		s.column = ((s.column-1)/4+1)*4 + 1
	default:
		s.column++
	}
	return c
}
