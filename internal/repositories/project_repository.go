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

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

const projectColumns = `
	id, title, description, github_url, website_url, category, tags,
	thumbnail_url, custom_content, readme_content, deployment_status,
	is_featured, order_index, created_by, created_at, updated_at
`

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.GitHubURL,
		&p.WebsiteURL,
		&p.Category,
		&p.Tags,
		&p.ThumbnailURL,
		&p.CustomContent,
		&p.ReadmeContent,
		&p.DeploymentStatus,
		&p.IsFeatured,
		&p.OrderIndex,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Create(project *models.Project) error {
	ctx := context.Background()

	project.Prepare()

	query := `
		INSERT INTO projects (
			id, title, description, github_url, website_url, category, tags,
			thumbnail_url, custom_content, readme_content, deployment_status,
			is_featured, order_index, created_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
	`

	now := time.Now()
	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.GitHubURL,
		project.WebsiteURL,
		project.Category,
		project.Tags,
		project.ThumbnailURL,
		project.CustomContent,
		project.ReadmeContent,
		project.DeploymentStatus,
		project.IsFeatured,
		project.OrderIndex,
		project.CreatedBy,
		now,
	)

	return err
}

func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	ctx := context.Background()

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return project, nil
}

func (r *ProjectRepository) List() ([]models.Project, error) {
	ctx := context.Background()

	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY order_index ASC, created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}

	return projects, rows.Err()
}

// Update overwrites every field except thumbnail_url and readme_content,
// which are only written when the caller actually produced a new value.
func (r *ProjectRepository) Update(project *models.Project, setThumbnail, setReadme bool) error {
	ctx := context.Background()

	query := `
		UPDATE projects SET
			title = $2, description = $3, github_url = $4, website_url = $5,
			category = $6, tags = $7, custom_content = $8,
			deployment_status = $9, is_featured = $10,
			thumbnail_url = CASE WHEN $11 THEN $12 ELSE thumbnail_url END,
			readme_content = CASE WHEN $13 THEN $14 ELSE readme_content END,
			updated_at = now()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.GitHubURL,
		project.WebsiteURL,
		project.Category,
		project.Tags,
		project.CustomContent,
		project.DeploymentStatus,
		project.IsFeatured,
		setThumbnail,
		project.ThumbnailURL,
		setReadme,
		project.ReadmeContent,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("project not found")
	}

	return nil
}

func (r *ProjectRepository) UpdateReadme(id uuid.UUID, readme string) error {
	ctx := context.Background()

	query := `UPDATE projects SET readme_content = $2, updated_at = now() WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, readme)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("project not found")
	}
	return nil
}

func (r *ProjectRepository) UpdateOrderIndex(id uuid.UUID, orderIndex int) error {
	ctx := context.Background()

	query := `UPDATE projects SET order_index = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, orderIndex)
	return err
}

func (r *ProjectRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM projects WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("project not found")
	}
	return nil
}
