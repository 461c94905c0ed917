package matdb

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed materials.yaml
var builtinSeed []byte

// DB is a read-only material database. It is fully populated by Load (or
// Builtin) and never mutated afterwards, so a single DB may be shared by
// any number of concurrent resolvers without locking.
type DB struct {
	pure   map[string]MaterialRecord
	alloys map[string]AlloyRecord
}

// dbFile is the on-disk YAML layout of a database.
type dbFile struct {
	Pure   map[string]MaterialRecord `yaml:"pure"`
	Alloys map[string]AlloyRecord    `yaml:"alloys"`
}

var (
	builtinOnce sync.Once
	builtinDB   *DB
)

// Builtin returns the embedded seed database. The seed is parsed once per
// process; a malformed seed is a build defect and panics at first use.
func Builtin() *DB {
	builtinOnce.Do(func() {
		db, err := Load(bytes.NewReader(builtinSeed))
		if err != nil {
			panic(fmt.Sprintf("matdb: embedded seed is invalid: %v", err))
		}
		builtinDB = db
	})

	return builtinDB
}

// Load reads a YAML database from r and validates it. Unknown fields,
// duplicate keys and alloys whose components are not defined in the same
// database are rejected with ErrBadDatabase.
func Load(r io.Reader) (*DB, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file dbFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDatabase, err)
	}

	db := &DB{
		pure:   make(map[string]MaterialRecord, len(file.Pure)),
		alloys: make(map[string]AlloyRecord, len(file.Alloys)),
	}
	for name, rec := range file.Pure {
		if name == "" {
			return nil, fmt.Errorf("%w: empty pure-material name", ErrBadDatabase)
		}
		db.pure[name] = rec
	}
	for name, rec := range file.Alloys {
		if name == "" {
			return nil, fmt.Errorf("%w: empty alloy name", ErrBadDatabase)
		}
		for _, comp := range rec.Components {
			if comp == "" {
				return nil, fmt.Errorf("%w: alloy %q needs two component names", ErrBadDatabase, name)
			}
			if _, ok := db.pure[comp]; !ok {
				return nil, fmt.Errorf("%w: alloy %q references undefined material %q",
					ErrBadDatabase, name, comp)
			}
		}
		db.alloys[name] = rec
	}

	return db, nil
}

// LoadFile reads a YAML database from path via Load.
func LoadFile(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDatabase, err)
	}
	defer f.Close()

	return Load(f)
}

// Pure looks up the record of a pure semiconductor by name.
func (db *DB) Pure(name string) (MaterialRecord, error) {
	rec, ok := db.pure[name]
	if !ok {
		return MaterialRecord{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}

	return rec, nil
}

// Alloy looks up the record of a binary alloy by name.
func (db *DB) Alloy(name string) (AlloyRecord, error) {
	rec, ok := db.alloys[name]
	if !ok {
		return AlloyRecord{}, fmt.Errorf("%w: %q", ErrUnknownAlloy, name)
	}

	return rec, nil
}

// PureNames returns the names of all pure semiconductors, sorted.
func (db *DB) PureNames() []string {
	names := make([]string, 0, len(db.pure))
	for name := range db.pure {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// AlloyNames returns the names of all alloys, sorted.
func (db *DB) AlloyNames() []string {
	names := make([]string, 0, len(db.alloys))
	for name := range db.alloys {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
