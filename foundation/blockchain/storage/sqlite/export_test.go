package sqlite

// SetRaw stores the records without validation to simulate a damaged
// snapshot.
func (s *SQLite) SetRaw(chain string, pool string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO snapshot (id, chain, pool) VALUES (1, ?, ?)`, chain, pool)
	return err
}
