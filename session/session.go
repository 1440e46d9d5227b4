// Package session parses the textual session-description format used
// to bootstrap stream transports. The format is line oriented: each
// line is a single lower-case key, an equals sign, and a value. It has
// no data coupling with the packet codec; only the error-reporting
// conventions are shared.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors, distinguishable with errors.Is.
var (
	// ErrSyntax means a line is not a well-formed key=value pair or a
	// value does not match its key's structure.
	ErrSyntax = errors.New("session: malformed line")

	// ErrMissingField means a mandatory line (v=, o=, s=) is absent or
	// out of order.
	ErrMissingField = errors.New("session: missing mandatory field")
)

// ParseError records the 1-based line number at which parsing failed.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("session: parse line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Origin identifies who created the session.
type Origin struct {
	Username  string
	SessionID uint64
	// TagSeed seeds verification-tag selection for the association.
	TagSeed uint32
	Address string
}

// Media describes one stream group within the session.
type Media struct {
	Label      string
	Port       uint16
	Streams    uint16
	Attributes []string
}

// Description is a parsed session description.
type Description struct {
	Version    int
	Origin     Origin
	Name       string
	Connection string
	Attributes []string
	Media      []Media
}

// Parse reads a session description. Mandatory lines are v= (first),
// o=, and s=, in that order before any m= section. a= lines attach to
// the most recent m= section, or to the session when none is open.
// Unknown single-letter keys are ignored; structurally bad lines fail.
func Parse(text string) (*Description, error) {
	d := &Description{}
	var (
		sawVersion bool
		sawOrigin  bool
		sawName    bool
	)

	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimRight(sc.Text(), "\r")
		if raw == "" {
			continue
		}
		if len(raw) < 2 || raw[1] != '=' {
			return nil, &ParseError{Line: line, Err: ErrSyntax}
		}
		key, value := raw[0], raw[2:]

		if !sawVersion && key != 'v' {
			return nil, &ParseError{Line: line, Err: ErrMissingField}
		}

		switch key {
		case 'v':
			if sawVersion {
				return nil, &ParseError{Line: line, Err: ErrSyntax}
			}
			v, err := strconv.Atoi(value)
			if err != nil || v < 0 {
				return nil, &ParseError{Line: line, Err: ErrSyntax}
			}
			d.Version = v
			sawVersion = true
		case 'o':
			o, err := parseOrigin(value)
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			d.Origin = o
			sawOrigin = true
		case 's':
			if value == "" {
				return nil, &ParseError{Line: line, Err: ErrSyntax}
			}
			d.Name = value
			sawName = true
		case 'c':
			d.Connection = value
		case 'm':
			if !sawOrigin || !sawName {
				return nil, &ParseError{Line: line, Err: ErrMissingField}
			}
			m, err := parseMedia(value)
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			d.Media = append(d.Media, m)
		case 'a':
			if len(d.Media) > 0 {
				last := &d.Media[len(d.Media)-1]
				last.Attributes = append(last.Attributes, value)
			} else {
				d.Attributes = append(d.Attributes, value)
			}
		default:
			// Unknown keys are skipped for forward compatibility.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: line, Err: err}
	}

	if !sawVersion || !sawOrigin || !sawName {
		return nil, &ParseError{Line: line, Err: ErrMissingField}
	}
	return d, nil
}

// parseOrigin parses "username session-id tag-seed address".
func parseOrigin(value string) (Origin, error) {
	fields := strings.Fields(value)
	if len(fields) != 4 {
		return Origin{}, ErrSyntax
	}
	id, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Origin{}, ErrSyntax
	}
	seed, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return Origin{}, ErrSyntax
	}
	return Origin{
		Username:  fields[0],
		SessionID: id,
		TagSeed:   uint32(seed),
		Address:   fields[3],
	}, nil
}

// parseMedia parses "label port stream-count".
func parseMedia(value string) (Media, error) {
	fields := strings.Fields(value)
	if len(fields) != 3 {
		return Media{}, ErrSyntax
	}
	port, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return Media{}, ErrSyntax
	}
	streams, err := strconv.ParseUint(fields[2], 10, 16)
	if err != nil {
		return Media{}, ErrSyntax
	}
	return Media{
		Label:   fields[0],
		Port:    uint16(port),
		Streams: uint16(streams),
	}, nil
}
