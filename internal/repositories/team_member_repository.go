package repositories

import (
	"context"
	"errors"
	"time"

	"teamfolio/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeamMemberRepository struct {
	pool *pgxpool.Pool
}

func NewTeamMemberRepository(pool *pgxpool.Pool) *TeamMemberRepository {
	return &TeamMemberRepository{pool: pool}
}

const teamMemberColumns = `
	id, name, role, bio, github_url, thumbnail_url, tags, one_line_intro,
	short_message, background_color, background_image_url, use_github_data,
	use_glassmorphism, representative_project_id, related_project_ids,
	custom_content, readme_content, created_at, updated_at
`

func scanTeamMember(row pgx.Row) (*models.TeamMember, error) {
	var m models.TeamMember
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Role,
		&m.Bio,
		&m.GitHubURL,
		&m.ThumbnailURL,
		&m.Tags,
		&m.OneLineIntro,
		&m.ShortMessage,
		&m.BackgroundColor,
		&m.BackgroundImageURL,
		&m.UseGitHubData,
		&m.UseGlassmorphism,
		&m.RepresentativeProjectID,
		&m.RelatedProjectIDs,
		&m.CustomContent,
		&m.ReadmeContent,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	ctx := context.Background()

	member.Prepare()

	query := `
		INSERT INTO team_members (
			id, name, role, bio, github_url, thumbnail_url, tags, one_line_intro,
			short_message, background_color, background_image_url, use_github_data,
			use_glassmorphism, representative_project_id, related_project_ids,
			custom_content, readme_content, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18)
	`

	now := time.Now()
	_, err := r.pool.Exec(ctx, query,
		member.ID,
		member.Name,
		member.Role,
		member.Bio,
		member.GitHubURL,
		member.ThumbnailURL,
		member.Tags,
		member.OneLineIntro,
		member.ShortMessage,
		member.BackgroundColor,
		member.BackgroundImageURL,
		member.UseGitHubData,
		member.UseGlassmorphism,
		member.RepresentativeProjectID,
		member.RelatedProjectIDs,
		member.CustomContent,
		member.ReadmeContent,
		now,
	)

	return err
}

func (r *TeamMemberRepository) GetByID(id uuid.UUID) (*models.TeamMember, error) {
	ctx := context.Background()

	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE id = $1`

	member, err := scanTeamMember(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return member, nil
}

func (r *TeamMemberRepository) List() ([]models.TeamMember, error) {
	ctx := context.Background()

	query := `SELECT ` + teamMemberColumns + ` FROM team_members ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *member)
	}

	return members, rows.Err()
}

// Update overwrites every field except thumbnail_url, background_image_url
// and readme_content, which are only written when a new value was produced.
func (r *TeamMemberRepository) Update(member *models.TeamMember, setThumbnail, setBackground, setReadme bool) error {
	ctx := context.Background()

	// use_glassmorphism is derived from the background image that will be in
	// the row after this statement, whether it came from a new upload or was
	// already stored.
	query := `
		UPDATE team_members SET
			name = $2, role = $3, bio = $4, github_url = $5, tags = $6,
			one_line_intro = $7, short_message = $8, background_color = $9,
			use_github_data = $10,
			use_glassmorphism = CASE
				WHEN (CASE WHEN $17 THEN $18 ELSE background_image_url END) <> '' THEN FALSE
				ELSE $11
			END,
			representative_project_id = $12, related_project_ids = $13,
			custom_content = $14,
			thumbnail_url = CASE WHEN $15 THEN $16 ELSE thumbnail_url END,
			background_image_url = CASE WHEN $17 THEN $18 ELSE background_image_url END,
			readme_content = CASE WHEN $19 THEN $20 ELSE readme_content END,
			updated_at = now()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		member.ID,
		member.Name,
		member.Role,
		member.Bio,
		member.GitHubURL,
		member.Tags,
		member.OneLineIntro,
		member.ShortMessage,
		member.BackgroundColor,
		member.UseGitHubData,
		member.UseGlassmorphism,
		member.RepresentativeProjectID,
		member.RelatedProjectIDs,
		member.CustomContent,
		setThumbnail,
		member.ThumbnailURL,
		setBackground,
		member.BackgroundImageURL,
		setReadme,
		member.ReadmeContent,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("team member not found")
	}

	return nil
}

func (r *TeamMemberRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM team_members WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("team member not found")
	}
	return nil
}
