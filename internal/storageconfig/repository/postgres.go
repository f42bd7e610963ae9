package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/storageconfig/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a storage configuration repository that uses the given db for persistence.
func NewPostgresRepository(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

func (r *PostgresRepository) Get(ctx context.Context) (*domain.Config, error) {
	var c domain.Config
	var distID, cfDomain sql.NullString
	err := db.Conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT id, bucket, region, cloudfront_distribution_id, cloudfront_domain, updated_by_user_id, updated_at
		 FROM storage_configurations ORDER BY updated_at DESC LIMIT 1 FOR UPDATE`).
		Scan(&c.ID, &c.Bucket, &c.Region, &distID, &cfDomain, &c.UpdatedByUserID, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.CloudFrontDistributionID, c.CloudFrontDomain = distID.String, cfDomain.String
	return &c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *domain.Config) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO storage_configurations (id, bucket, region, cloudfront_distribution_id, cloudfront_domain, updated_by_user_id, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Bucket, c.Region, nullString(c.CloudFrontDistributionID), nullString(c.CloudFrontDomain), c.UpdatedByUserID, c.UpdatedAt)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, c *domain.Config) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE storage_configurations
		 SET bucket = $2, region = $3, cloudfront_distribution_id = $4, cloudfront_domain = $5, updated_by_user_id = $6, updated_at = $7
		 WHERE id = $1`,
		c.ID, c.Bucket, c.Region, nullString(c.CloudFrontDistributionID), nullString(c.CloudFrontDomain), c.UpdatedByUserID, c.UpdatedAt)
	return err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
