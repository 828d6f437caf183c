package database

// migrations is an ordered list of SQL migration groups. Each entry is a slice
// of SQL statements that are executed together in a single transaction. The
// version number is the 1-based index into this slice.
//
// References between tables (company_id, contact_id) are plain integer
// columns with no FOREIGN KEY clause: rows may point at ids that no longer
// exist and deletes never cascade.
var migrations = [][]string{
	// Migration 1: core CRM tables
	{
		`CREATE TABLE companies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			website TEXT,
			industry TEXT,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		)`,
		`CREATE INDEX idx_companies_created ON companies(created_at)`,

		`CREATE TABLE contacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT,
			phone TEXT,
			company_id INTEGER,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		)`,
		`CREATE INDEX idx_contacts_created ON contacts(created_at)`,
		`CREATE INDEX idx_contacts_company ON contacts(company_id)`,

		`CREATE TABLE activities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			contact_id INTEGER NOT NULL,
			type TEXT NOT NULL,
			subject TEXT,
			notes TEXT,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		)`,
		`CREATE INDEX idx_activities_contact ON activities(contact_id, created_at)`,

		`CREATE TABLE deals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			company_id INTEGER,
			title TEXT NOT NULL,
			value REAL,
			stage TEXT DEFAULT 'lead',
			close_date TEXT,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		)`,
		`CREATE INDEX idx_deals_created ON deals(created_at)`,
	},

	// Migration 2: operational request log
	{
		`CREATE TABLE request_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			method TEXT NOT NULL,
			path TEXT NOT NULL,
			status_code INTEGER NOT NULL,
			duration_ms INTEGER,
			correlation_id TEXT,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		)`,
		`CREATE INDEX idx_request_log_time ON request_log(created_at)`,
	},
}

// DataTables lists the tables holding CRM and operational rows, in an order
// that is safe for bulk deletion.
var DataTables = []string{
	"activities",
	"contacts",
	"deals",
	"companies",
	"request_log",
}
