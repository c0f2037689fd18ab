package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/geo3dhub/geo-hub-backend/internal/contractors/domain"
)

// ContractorRepository reads contractor profiles from Postgres.
type ContractorRepository struct {
	db *sql.DB
}

// NewContractorRepository creates a new contractor repository.
func NewContractorRepository(db *sql.DB) *ContractorRepository {
	return &ContractorRepository{db: db}
}

// List returns every contractor profile, oldest account first. The stable
// order matters: the matching filter preserves it, so two identical
// searches return identical result sequences.
func (r *ContractorRepository) List(ctx context.Context) ([]domain.Profile, error) {
	const q = `
SELECT id::text, display_name, professional_title, location, skills, bio, created_at
FROM users
WHERE role = 'contractor'
ORDER BY created_at, id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Profile, 0, 32)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns one contractor profile.
func (r *ContractorRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	const q = `
SELECT id::text, display_name, professional_title, location, skills, bio, created_at
FROM users
WHERE role = 'contractor' AND id::text = $1;
`
	row := r.db.QueryRowContext(ctx, q, id)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrContractorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (domain.Profile, error) {
	var p domain.Profile
	var title, location, bio sql.NullString
	var skills pq.StringArray

	err := row.Scan(&p.ID, &p.Name, &title, &location, &skills, &bio, &p.JoinedAt)
	if err != nil {
		return domain.Profile{}, err
	}

	p.ProfessionalTitle = title.String
	p.Location = location.String
	p.Bio = bio.String
	p.Skills = []string(skills)
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}
