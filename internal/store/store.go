package store

import "database/sql"

// Store holds all sub-stores used by the application. It is safe for
// concurrent use; the only shared state is the database handle.
type Store struct {
	DB         *sql.DB
	Companies  CompanyStore
	Contacts   ContactStore
	Activities ActivityStore
	Deals      DealStore
	Dashboard  DashboardStore
	RequestLog RequestLogStore
}

// New creates a Store with all sub-stores initialized.
func New(db *sql.DB) *Store {
	return &Store{
		DB:         db,
		Companies:  NewSQLiteCompanyStore(db),
		Contacts:   NewSQLiteContactStore(db),
		Activities: NewSQLiteActivityStore(db),
		Deals:      NewSQLiteDealStore(db),
		Dashboard:  NewSQLiteDashboardStore(db),
		RequestLog: NewSQLiteRequestLogStore(db),
	}
}
