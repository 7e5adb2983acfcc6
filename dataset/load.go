package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/guiguan/caster"
)

// RecordKind distinguishes the two record types of a dataset file.
type RecordKind int8

const (
	// KeyRecord is a 'key <key> <value> <prob>' line.
	KeyRecord RecordKind = iota
	// MissRecord is a 'miss <prob>' line.
	MissRecord
)

// Record is one parsed dataset line. Records are broadcast to loader
// subscribers in file order while parsing runs.
type Record struct {
	Kind  RecordKind
	Key   string
	Value string
	Prob  float64
	Line  int // 1-based source line
}

// Loader reads one dataset file and broadcasts parsed records.
type Loader struct {
	path      string
	info      os.FileInfo
	file      *os.File
	cast      *caster.Caster // broadcaster for records parsed during Load
	lastError error          // remember last I/O or parse error
}

// Open prepares a loader for the named file. The file must be a regular file;
// opening is always done synchronously.
func Open(name string) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	l := &Loader{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast records as they are parsed
	}
	return l, nil
}

// Subscribe registers an observer for parsed records. It returns the receive
// channel and an unsubscribe function. The channel delivers Record values and
// is closed when loading finishes.
//
// Subscribe before calling Load; records parsed earlier are not replayed.
func (l *Loader) Subscribe() (<-chan interface{}, func()) {
	ch, _ := l.cast.Sub(nil, 64)
	return ch, func() { l.cast.Unsub(ch) }
}

// Load parses the whole file and returns the dataset. Every well-formed
// record is broadcast to subscribers before the next line is read. Load
// closes the file and the broadcaster; a loader is good for one Load only.
func (l *Loader) Load() (Dataset, error) {
	defer l.file.Close()
	defer l.cast.Close()
	var d Dataset
	scanner := bufio.NewScanner(l.file)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		rec, err := parseRecord(fields, line)
		if err != nil {
			l.lastError = err
			return Dataset{}, err
		}
		switch rec.Kind {
		case KeyRecord:
			d.Keys = append(d.Keys, rec.Key)
			d.Values = append(d.Values, rec.Value)
			d.KeyProbs = append(d.KeyProbs, rec.Prob)
		case MissRecord:
			d.MissProbs = append(d.MissProbs, rec.Prob)
		}
		l.cast.Pub(rec)
	}
	if err := scanner.Err(); err != nil {
		l.lastError = err
		return Dataset{}, err
	}
	tracer().Debugf("dataset %q: %d keys, %d gaps", l.path, len(d.Keys), len(d.MissProbs))
	return d, nil
}

// LastError returns the last I/O or parse error seen by the loader.
func (l *Loader) LastError() error {
	return l.lastError
}

func parseRecord(fields []string, line int) (Record, error) {
	switch fields[0] {
	case "key":
		if len(fields) != 4 {
			return Record{}, fmt.Errorf("%w: line %d: key record needs 3 arguments", ErrBadRecord, line)
		}
		prob, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return Record{}, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
		return Record{Kind: KeyRecord, Key: fields[1], Value: fields[2], Prob: prob, Line: line}, nil
	case "miss":
		if len(fields) != 2 {
			return Record{}, fmt.Errorf("%w: line %d: miss record needs 1 argument", ErrBadRecord, line)
		}
		prob, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Record{}, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
		return Record{Kind: MissRecord, Prob: prob, Line: line}, nil
	}
	return Record{}, fmt.Errorf("%w: line %d: unknown record type %q", ErrBadRecord, line, fields[0])
}

// Load is a convenience wrapper: open the named file and parse it in one go.
func Load(name string) (Dataset, error) {
	l, err := Open(name)
	if err != nil {
		return Dataset{}, err
	}
	return l.Load()
}
