package players

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new PlayerStore backed by the given database handle.
func New(db *sql.DB) PlayerStore {
	return &store{
		db: db,
	}
}

// GetAllPlayers retrieves every record in insertion order. Duplicate names
// come back as-is; collapsing them is the caller's concern.
func (s *store) GetAllPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, country, age, date_of_birth, nickname, ranking, tour_card, career_earnings
		FROM players ORDER BY rowid
	`)
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var result []Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		result = append(result, *player)
	}
	return result, rows.Err()
}

// DistinctValues returns the distinct non-empty values of the given field,
// ordered by first occurrence in the store.
func (s *store) DistinctValues(field Field) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var column string
	switch field {
	case FieldCountry:
		column = "country"
	case FieldNickname:
		column = "nickname"
	default:
		return nil, fmt.Errorf("unknown field %q", field)
	}

	query := fmt.Sprintf(`
		SELECT %[1]s FROM players
		WHERE %[1]s IS NOT NULL AND %[1]s != ''
		GROUP BY %[1]s ORDER BY MIN(rowid)
	`, column)

	rows, err := s.db.Query(query)
	if err != nil {
		log.Error("Failed to query distinct values", "field", field, "error", err)
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			log.Error("Failed to scan distinct value", "field", field, "error", err)
			continue
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// GetPlayerByID looks up a single record. A malformed id is reported as
// ErrInvalidID rather than being sent to the database.
func (s *store) GetPlayerByID(id string) (*Player, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, name, country, age, date_of_birth, nickname, ranking, tour_card, career_earnings
		FROM players WHERE id = ?
	`, id)

	player, err := scanPlayer(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		log.Error("Failed to query player by id", "id", id, "error", err)
		return nil, err
	}
	return player, nil
}

// InsertPlayers stores the given records, assigning a fresh id to any record
// without one. Duplicate names are inserted verbatim.
func (s *store) InsertPlayers(batch []Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO players (id, name, country, age, date_of_birth, nickname, ranking, tour_card, career_earnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, p := range batch {
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		var age, ranking any
		if p.Age != nil {
			age = *p.Age
		}
		if p.Ranking != nil {
			ranking = *p.Ranking
		}
		if _, err := stmt.Exec(id, p.Name, nullable(p.Country), age, nullable(p.DateOfBirth), nullable(p.Nickname), ranking, nullable(p.TourCard), nullable(p.CareerEarnings)); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert player %q: %w", p.Name, err)
		}
	}

	return tx.Commit()
}

func (s *store) CountPlayers() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM players").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM players")
	if err != nil {
		log.Error("Failed to clear players table", "error", err)
	}
	return err
}

// scanPlayer is a helper to scan a single player row.
func scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	var country, dateOfBirth, nickname, tourCard, careerEarnings sql.NullString
	var age, ranking sql.NullInt64

	err := scanner.Scan(
		&p.ID, &p.Name, &country, &age, &dateOfBirth,
		&nickname, &ranking, &tourCard, &careerEarnings,
	)
	if err != nil {
		return nil, err
	}

	p.Country = country.String
	p.DateOfBirth = dateOfBirth.String
	p.Nickname = nickname.String
	p.TourCard = tourCard.String
	p.CareerEarnings = careerEarnings.String
	if age.Valid {
		v := int(age.Int64)
		p.Age = &v
	}
	if ranking.Valid {
		v := int(ranking.Int64)
		p.Ranking = &v
	}
	return &p, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
