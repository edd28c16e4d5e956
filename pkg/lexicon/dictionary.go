package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/trnltk/pkg/domain"
)

const commentPrefix = "#"

// Load reads one lexeme per line. Blank lines and comments are skipped.
func Load(r io.Reader) ([]*domain.Lexeme, error) {
	var lexemes []*domain.Lexeme
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := Normalize(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		lex, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		lexemes = append(lexemes, lex)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return lexemes, nil
}

// ParseLine parses a single dictionary line and infers the attributes the
// line leaves implicit.
func ParseLine(line string) (*domain.Lexeme, error) {
	line = strings.Join(strings.Fields(line), " ")
	if line == "" {
		return nil, fmt.Errorf("empty line: %w", domain.ErrInvalidLexeme)
	}

	lemma, meta, hasMeta := strings.Cut(line, " ")
	root := lemma
	var (
		pos      domain.PrimaryPos
		spos     domain.SecondaryPos
		attrs    domain.LexemeAttributes
		explicit bool
	)

	if hasMeta {
		if !strings.HasPrefix(meta, "[") || !strings.HasSuffix(meta, "]") {
			return nil, fmt.Errorf("%q: metadata must be bracketed: %w", line, domain.ErrInvalidLexeme)
		}
		for _, part := range strings.Split(meta[1:len(meta)-1], ";") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			key, value, ok := strings.Cut(part, ":")
			if !ok {
				return nil, fmt.Errorf("%q: bad metadata %q: %w", line, part, domain.ErrInvalidLexeme)
			}
			value = strings.TrimSpace(value)
			switch strings.TrimSpace(key) {
			case "P":
				var err error
				if pos, spos, err = parsePos(value); err != nil {
					return nil, fmt.Errorf("%q: %w", line, err)
				}
			case "A":
				for _, name := range splitList(value) {
					a, ok := domain.ParseLexemeAttribute(name)
					if !ok {
						return nil, fmt.Errorf("%q: unknown attribute %q: %w", line, name, domain.ErrInvalidLexeme)
					}
					attrs = attrs.With(a)
				}
			case "R":
				root = value
				explicit = true
			case "S":
				// reserved for special handling flags, ignored
			default:
				return nil, fmt.Errorf("%q: unknown metadata key %q: %w", line, key, domain.ErrInvalidLexeme)
			}
		}
	}

	switch {
	case pos != "":
	case isInfinitive(lemma):
		pos = domain.PosVerb
	default:
		pos = domain.PosNoun
	}
	lemmaRoot := root
	if pos == domain.PosVerb && !explicit && isInfinitive(root) {
		lemmaRoot = root[:len(root)-len("mak")]
	}
	if lemmaRoot == "" {
		return nil, fmt.Errorf("%q: empty root: %w", line, domain.ErrInvalidLexeme)
	}

	return &domain.Lexeme{
		Lemma:        lemma,
		LemmaRoot:    lemmaRoot,
		PrimaryPos:   pos,
		SecondaryPos: spos,
		Attributes:   InferAttributes(lemmaRoot, pos, attrs),
	}, nil
}

func isInfinitive(s string) bool {
	return len([]rune(s)) > 3 && (strings.HasSuffix(s, "mak") || strings.HasSuffix(s, "mek"))
}

func parsePos(value string) (domain.PrimaryPos, domain.SecondaryPos, error) {
	items := splitList(value)
	if len(items) == 0 || len(items) > 2 {
		return "", "", fmt.Errorf("bad part of speech %q: %w", value, domain.ErrInvalidLexeme)
	}
	pos, ok := domain.ParsePrimaryPos(items[0])
	if !ok {
		return "", "", fmt.Errorf("unknown part of speech %q: %w", items[0], domain.ErrInvalidLexeme)
	}
	if len(items) == 1 {
		return pos, domain.SecNone, nil
	}
	spos, ok := domain.ParseSecondaryPos(items[1])
	if !ok {
		return "", "", fmt.Errorf("unknown secondary part of speech %q: %w", items[1], domain.ErrInvalidLexeme)
	}
	return pos, spos, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
