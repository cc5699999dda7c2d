package interfaces

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/agrafix/elm-compiler/internal/canonical"
)

// Store persists restricted interfaces between builds so a module's
// dependencies do not need recompiling when only the module itself
// changed. Every open Store writes under a fresh generation stamp;
// Prune drops rows left over from earlier generations.
type Store struct {
	db         *sql.DB
	generation string
}

const storeSchema = `
CREATE TABLE IF NOT EXISTS interfaces (
	package    TEXT NOT NULL,
	module     TEXT NOT NULL,
	generation TEXT NOT NULL,
	data       BLOB NOT NULL,
	saved_at   TEXT NOT NULL,
	PRIMARY KEY (package, module)
);`

// OpenStore opens (creating if needed) an interface store at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open interface store: %w", err)
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init interface store: %w", err)
	}
	return &Store{db: db, generation: uuid.NewString()}, nil
}

// Save restricts and stores one module's interface, replacing any
// previous row for the same module.
func (s *Store) Save(name canonical.ModuleName, iface *Interface) error {
	data, err := Encode(Restrict(iface))
	if err != nil {
		return fmt.Errorf("save interface %s: %w", name, err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO interfaces (package, module, generation, data, saved_at)
		 VALUES (?, ?, ?, ?, ?)`,
		name.Package, name.Module, s.generation, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save interface %s: %w", name, err)
	}
	return nil
}

// Load fetches one module's interface. The second result reports
// whether the module was present.
func (s *Store) Load(name canonical.ModuleName) (*Interface, bool, error) {
	var data []byte
	err := s.db.QueryRow(
		`SELECT data FROM interfaces WHERE package = ? AND module = ?`,
		name.Package, name.Module,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load interface %s: %w", name, err)
	}
	iface, err := Decode(data)
	if err != nil {
		return nil, false, fmt.Errorf("load interface %s: %w", name, err)
	}
	return iface, true, nil
}

// LoadAll fetches every stored interface, keyed by module name.
func (s *Store) LoadAll() (map[canonical.ModuleName]*Interface, error) {
	rows, err := s.db.Query(`SELECT package, module, data FROM interfaces`)
	if err != nil {
		return nil, fmt.Errorf("load interfaces: %w", err)
	}
	defer rows.Close()

	out := make(map[canonical.ModuleName]*Interface)
	for rows.Next() {
		var name canonical.ModuleName
		var data []byte
		if err := rows.Scan(&name.Package, &name.Module, &data); err != nil {
			return nil, fmt.Errorf("load interfaces: %w", err)
		}
		iface, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("load interface %s: %w", name, err)
		}
		out[name] = iface
	}
	return out, rows.Err()
}

// Prune deletes interfaces written by earlier generations.
func (s *Store) Prune() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM interfaces WHERE generation != ?`, s.generation)
	if err != nil {
		return 0, fmt.Errorf("prune interface store: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) Close() error {
	return s.db.Close()
}
