// Copyright Geoffrey Challen, 2026. All rights reserved.

// Package store indexes extracted datasets into a local SQLite database.
// The database is a queryable rendering of the JSON artifact, and the
// analyze stage never depends on it, but it makes ad-hoc SQL over members
// and positions cheap once a Gray Book has been parsed.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gchallen/illinois-salary-parity/pkg/types"
)

// Store manages the dataset SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS departments (
			name TEXT PRIMARY KEY,
			ruleset TEXT,
			summary TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS members (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			department TEXT NOT NULL REFERENCES departments(name),
			seq INTEGER NOT NULL,
			name TEXT NOT NULL,
			faculty_type TEXT NOT NULL,
			rank TEXT NOT NULL,
			is_full_time INTEGER NOT NULL,
			is_joint INTEGER NOT NULL,
			total_present_salary REAL NOT NULL,
			total_proposed_salary REAL NOT NULL,
			total_present_fte REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS positions (
			member_id INTEGER NOT NULL REFERENCES members(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			title TEXT NOT NULL,
			tenure_code TEXT,
			empl_class TEXT,
			present_fte REAL NOT NULL,
			proposed_fte REAL NOT NULL,
			present_salary REAL NOT NULL,
			proposed_salary REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_members_department ON members(department)`,
		`CREATE INDEX IF NOT EXISTS idx_members_type_rank ON members(faculty_type, rank)`,
		`CREATE INDEX IF NOT EXISTS idx_positions_member ON positions(member_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Ingest replaces the stored rows for the dataset's department. The whole
// replacement runs in one transaction so a failed ingest leaves the previous
// rows intact.
func (s *Store) Ingest(ctx context.Context, ds types.Dataset) error {
	summary, err := json.Marshal(ds.Summary)
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM positions WHERE member_id IN (SELECT id FROM members WHERE department = ?)`,
		ds.Department); err != nil {
		return fmt.Errorf("clearing positions: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM members WHERE department = ?`, ds.Department); err != nil {
		return fmt.Errorf("clearing members: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO departments (name, ruleset, summary) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET ruleset = excluded.ruleset, summary = excluded.summary`,
		ds.Department, ds.Ruleset, string(summary)); err != nil {
		return fmt.Errorf("upserting department: %w", err)
	}

	for i, rec := range ds.Faculty {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO members
			 (department, seq, name, faculty_type, rank, is_full_time, is_joint,
			  total_present_salary, total_proposed_salary, total_present_fte)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			ds.Department, i, rec.Name, rec.FacultyType, rec.Rank,
			rec.IsFullTimeHere, rec.IsJointAppointment,
			rec.TotalPresentSalary, rec.TotalProposedSalary, rec.TotalPresentFTE)
		if err != nil {
			return fmt.Errorf("inserting member %s: %w", rec.Name, err)
		}
		memberID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading member id: %w", err)
		}
		for j, p := range rec.Positions {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO positions
				 (member_id, seq, title, tenure_code, empl_class,
				  present_fte, proposed_fte, present_salary, proposed_salary)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				memberID, j, p.Title, p.TenureCode, p.EmplClass,
				p.PresentFTE, p.ProposedFTE, p.PresentSalary, p.ProposedSalary); err != nil {
				return fmt.Errorf("inserting position for %s: %w", rec.Name, err)
			}
		}
	}

	return tx.Commit()
}

// Dataset reads a department's records back in their original document
// order, reconstructing the intermediate dataset.
func (s *Store) Dataset(ctx context.Context, department string) (types.Dataset, error) {
	ds := types.Dataset{Department: department}

	var summary sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT ruleset, summary FROM departments WHERE name = ?`, department,
	).Scan(&ds.Ruleset, &summary)
	if err == sql.ErrNoRows {
		return ds, fmt.Errorf("department %q not in store", department)
	}
	if err != nil {
		return ds, fmt.Errorf("reading department: %w", err)
	}
	if summary.Valid {
		if err := json.Unmarshal([]byte(summary.String), &ds.Summary); err != nil {
			return ds, fmt.Errorf("parsing summary: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, faculty_type, rank, is_full_time, is_joint,
		        total_present_salary, total_proposed_salary, total_present_fte
		 FROM members WHERE department = ? ORDER BY seq`, department)
	if err != nil {
		return ds, fmt.Errorf("querying members: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		var rec types.Record
		if err := rows.Scan(&id, &rec.Name, &rec.FacultyType, &rec.Rank,
			&rec.IsFullTimeHere, &rec.IsJointAppointment,
			&rec.TotalPresentSalary, &rec.TotalProposedSalary, &rec.TotalPresentFTE); err != nil {
			return ds, fmt.Errorf("scanning member: %w", err)
		}
		ds.Faculty = append(ds.Faculty, rec)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return ds, fmt.Errorf("iterating members: %w", err)
	}

	for i, id := range ids {
		positions, err := s.memberPositions(ctx, id)
		if err != nil {
			return ds, err
		}
		ds.Faculty[i].Positions = positions
	}
	return ds, nil
}

func (s *Store) memberPositions(ctx context.Context, memberID int64) ([]types.Position, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title, tenure_code, empl_class,
		        present_fte, proposed_fte, present_salary, proposed_salary
		 FROM positions WHERE member_id = ? ORDER BY seq`, memberID)
	if err != nil {
		return nil, fmt.Errorf("querying positions: %w", err)
	}
	defer rows.Close()

	var out []types.Position
	for rows.Next() {
		var p types.Position
		if err := rows.Scan(&p.Title, &p.TenureCode, &p.EmplClass,
			&p.PresentFTE, &p.ProposedFTE, &p.PresentSalary, &p.ProposedSalary); err != nil {
			return nil, fmt.Errorf("scanning position: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
