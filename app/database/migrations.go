package database

import (
	"database/sql"
	"log"
)

// RunMigrations applies the schema idempotently at startup. The unique
// indexes are the authoritative guards for receipt numbers, the attendance
// key and the single active year; application-level pre-checks only
// exist for friendlier error messages.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'staff',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS academic_years (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			label TEXT NOT NULL UNIQUE,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// At most one active year, enforced by storage.
		`CREATE UNIQUE INDEX IF NOT EXISTS academic_years_single_active
			ON academic_years (is_active) WHERE is_active`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_code TEXT NOT NULL UNIQUE,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			class_id UUID REFERENCES classes(id),
			academic_year TEXT,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fee_structure (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			class_id UUID NOT NULL REFERENCES classes(id),
			fee_type VARCHAR(50) NOT NULL,
			amount NUMERIC(10,2) NOT NULL CHECK (amount >= 0),
			academic_year TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// One active price per (class, fee type, year); superseded rows stay
		// behind with is_active = false.
		`CREATE UNIQUE INDEX IF NOT EXISTS fee_structure_active_tuple
			ON fee_structure (class_id, fee_type, academic_year) WHERE is_active`,
		`CREATE TABLE IF NOT EXISTS fee_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			receipt_no VARCHAR(40) NOT NULL UNIQUE,
			student_id UUID NOT NULL REFERENCES students(id),
			amount NUMERIC(10,2) NOT NULL CHECK (amount > 0),
			payment_method VARCHAR(20) NOT NULL,
			payment_date DATE NOT NULL,
			academic_year TEXT NOT NULL,
			fee_type VARCHAR(50) NOT NULL,
			remarks TEXT NOT NULL DEFAULT '',
			collected_by UUID NOT NULL REFERENCES users(id),
			transaction_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS fee_payments_student_year
			ON fee_payments (student_id, academic_year)`,
		`CREATE INDEX IF NOT EXISTS fee_payments_date
			ON fee_payments (payment_date DESC, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			class_id UUID NOT NULL REFERENCES classes(id),
			attendance_date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			remarks TEXT NOT NULL DEFAULT '',
			marked_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, class_id, attendance_date)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
