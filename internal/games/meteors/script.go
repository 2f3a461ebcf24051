package meteors

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/meteors/internal/core"
)

// ErrSyntax is the sentinel every ParseError unwraps to.
var ErrSyntax = errors.New("syntax error")

// ParseError describes a malformed line in a wave or level script.
type ParseError struct {
	Path   string
	Line   int // 1-based
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("script: %s:%d: %s: %q", e.Path, e.Line, e.Reason, e.Text)
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// LevelEntry schedules a wave file inside a level.
type LevelEntry struct {
	At   time.Duration
	Path string
}

// Level is a parsed level script.
type Level struct {
	Name     string
	Entries  []LevelEntry
	Controls []RandomControl
}

// maxEventMS is the latest event time a time.Duration can hold.
const maxEventMS = math.MaxInt64 / int64(time.Millisecond)

// record is one tokenized script line.
type record struct {
	line   int
	text   string
	at     time.Duration
	fields []string // fields after the time
}

// scanRecords splits a script into records, skipping blanks and comments.
func scanRecords(r io.Reader, name string) ([]record, error) {
	var out []record
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		perr := func(reason string) error {
			return &ParseError{Path: name, Line: n, Text: strings.TrimSpace(sc.Text()), Reason: reason}
		}

		ms, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, perr("time must be an integer number of milliseconds")
		}
		if ms < 0 {
			return nil, perr("time must not be negative")
		}
		if ms > maxEventMS {
			return nil, perr("time out of range")
		}
		if len(fields) < 2 {
			return nil, perr("missing command")
		}
		out = append(out, record{
			line:   n,
			text:   strings.TrimSpace(sc.Text()),
			at:     time.Duration(ms) * time.Millisecond,
			fields: fields[1:],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("script: read %s: %w", name, err)
	}
	return out, nil
}

func (rec record) errorf(name, format string, args ...any) error {
	return &ParseError{Path: name, Line: rec.line, Text: rec.text, Reason: fmt.Sprintf(format, args...)}
}

// ParseWave reads a wave script. Every event time is delayed by offset.
// Any malformed line fails the whole wave.
func ParseWave(r io.Reader, name string, offset time.Duration) (*Wave, error) {
	recs, err := scanRecords(r, name)
	if err != nil {
		return nil, err
	}

	var spawns []ScriptedSpawn
	var controls []RandomControl
	for _, rec := range recs {
		if rec.fields[0] == "random" {
			ctrl, err := parseRandom(rec, name)
			if err != nil {
				return nil, err
			}
			controls = append(controls, ctrl)
			continue
		}

		deg, err := strconv.ParseFloat(rec.fields[0], 64)
		if err != nil || math.IsNaN(deg) || math.IsInf(deg, 0) {
			return nil, rec.errorf(name, "unknown command %q", rec.fields[0])
		}
		spawn := ScriptedSpawn{At: rec.at, Angle: core.DegToRad(deg)}
		switch len(rec.fields) {
		case 1:
		case 2:
			speed, err := strconv.ParseFloat(rec.fields[1], 64)
			if err != nil || !(speed > 0) || math.IsInf(speed, 0) {
				return nil, rec.errorf(name, "speed must be a positive number")
			}
			spawn.Speed = speed
		default:
			return nil, rec.errorf(name, "too many fields")
		}
		spawns = append(spawns, spawn)
	}

	w := NewWave(name, spawns, controls)
	if offset > 0 && w.Duration() > time.Duration(math.MaxInt64)-offset {
		return nil, fmt.Errorf("script: %s: offset %v puts events out of range: %w", name, offset, ErrSyntax)
	}
	w.Shift(offset)
	return w, nil
}

// parseRandom parses "random <interval_ms|off> [<curve_percent>]".
func parseRandom(rec record, name string) (RandomControl, error) {
	ctrl := RandomControl{At: rec.at}
	args := rec.fields[1:]
	if len(args) == 0 {
		return ctrl, rec.errorf(name, "random needs an interval or \"off\"")
	}
	if len(args) > 2 {
		return ctrl, rec.errorf(name, "too many fields")
	}

	if args[0] == "off" {
		ctrl.Enabled = false
	} else {
		ms, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || ms <= 0 {
			return ctrl, rec.errorf(name, "random interval must be a positive integer or \"off\"")
		}
		ctrl.Enabled = true
		ctrl.Interval = time.Duration(ms) * time.Millisecond
	}

	if len(args) == 2 {
		pct, err := strconv.ParseFloat(args[1], 64)
		if err != nil || pct < 0 || pct > 100 || math.IsNaN(pct) {
			return ctrl, rec.errorf(name, "curve percent must be a number in [0, 100]")
		}
		ctrl.CurvePercent = &pct
	}
	return ctrl, nil
}

// ParseLevel reads a level script: timed wave paths and random controls.
func ParseLevel(r io.Reader, name string) (*Level, error) {
	recs, err := scanRecords(r, name)
	if err != nil {
		return nil, err
	}

	lvl := &Level{Name: name}
	for _, rec := range recs {
		if rec.fields[0] == "random" {
			ctrl, err := parseRandom(rec, name)
			if err != nil {
				return nil, err
			}
			lvl.Controls = append(lvl.Controls, ctrl)
			continue
		}
		if len(rec.fields) != 1 {
			return nil, rec.errorf(name, "expected a single wave path")
		}
		lvl.Entries = append(lvl.Entries, LevelEntry{At: rec.at, Path: cleanScriptPath(rec.fields[0])})
	}
	return lvl, nil
}

// cleanScriptPath normalizes a script path for lookup in an fs.FS.
func cleanScriptPath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = path.Clean(p)
	return strings.TrimLeft(p, "/")
}

// Loader reads wave and level scripts from a file system, laid out as
// waves/*.txt and levels/*.txt.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadWave reads and parses one wave, delaying its events by offset.
func (l *Loader) LoadWave(name string, offset time.Duration) (*Wave, error) {
	name = cleanScriptPath(name)
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("script: open wave %s: %w", name, err)
	}
	defer f.Close()
	return ParseWave(f, name, offset)
}

// LoadLevel reads a level and every wave it names. Level-wide random
// controls become a wave of their own. Nothing is returned unless every
// referenced wave loads.
func (l *Loader) LoadLevel(name string) ([]*Wave, error) {
	name = cleanScriptPath(name)
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("script: open level %s: %w", name, err)
	}
	defer f.Close()

	lvl, err := ParseLevel(f, name)
	if err != nil {
		return nil, err
	}

	waves := make([]*Wave, 0, len(lvl.Entries)+1)
	for _, e := range lvl.Entries {
		w, err := l.LoadWave(e.Path, e.At)
		if err != nil {
			return nil, fmt.Errorf("script: level %s: %w", name, err)
		}
		waves = append(waves, w)
	}
	if len(lvl.Controls) > 0 {
		waves = append(waves, NewWave(name, nil, lvl.Controls))
	}
	return waves, nil
}

// Waves lists the wave catalogue in name order.
func (l *Loader) Waves() ([]string, error) {
	return l.glob("waves/*.txt")
}

// Levels lists the level catalogue in name order.
func (l *Loader) Levels() ([]string, error) {
	return l.glob("levels/*.txt")
}

func (l *Loader) glob(pattern string) ([]string, error) {
	names, err := fs.Glob(l.fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("script: list %s: %w", pattern, err)
	}
	sort.Strings(names)
	return names, nil
}

// Check parses a wave or level script without keeping it.
func (l *Loader) Check(name string) error {
	if strings.HasPrefix(cleanScriptPath(name), "levels/") {
		_, err := l.LoadLevel(name)
		return err
	}
	_, err := l.LoadWave(name, 0)
	return err
}
