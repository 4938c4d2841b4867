package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrysvd/test-task/internal/core/domain"
	"github.com/dmitrysvd/test-task/internal/core/port"

	"github.com/google/uuid"
)

// SQLQuerier is the subset of database/sql methods the repository needs,
// satisfied by *sql.DB and *sql.Tx.
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqlFileRepository struct {
	db SQLQuerier
}

// NewSqlFileRepository creates sqlFileRepository that implements port.FileRepository
func NewSqlFileRepository(db SQLQuerier) port.FileRepository {
	return &sqlFileRepository{
		db: db,
	}
}

// Create inserts a new uploaded file record
func (s *sqlFileRepository) Create(ctx context.Context, file domain.UploadedFile) error {
	query := `INSERT INTO uploaded_file (uid, size, format, original_name, extension, is_uploaded_to_cloud)
              VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query, file.UID, file.Size, file.Format, file.OriginalName, file.Extension, file.UploadedToCloud)
	if err != nil {
		return fmt.Errorf("error inserting uploaded file: %w", err)
	}
	return nil
}

// FindByUID finds by uid
func (s *sqlFileRepository) FindByUID(ctx context.Context, uid uuid.UUID) (*domain.UploadedFile, error) {
	query := `SELECT uid, size, format, original_name, extension, is_uploaded_to_cloud
              FROM uploaded_file
              WHERE uid = $1`

	var dbFile dbUploadedFile
	err := s.db.QueryRowContext(ctx, query, uid).Scan(
		&dbFile.UID,
		&dbFile.Size,
		&dbFile.Format,
		&dbFile.OriginalName,
		&dbFile.Extension,
		&dbFile.UploadedToCloud,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFileNotFound
		}
		return nil, err
	}

	return dbFile.ToDomain(), nil
}

// List returns all uploaded file records
func (s *sqlFileRepository) List(ctx context.Context) ([]domain.UploadedFile, error) {
	query := `SELECT uid, size, format, original_name, extension, is_uploaded_to_cloud
              FROM uploaded_file`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying uploaded files: %w", err)
	}
	defer rows.Close()

	var files []domain.UploadedFile
	for rows.Next() {
		var dbFile dbUploadedFile
		err := rows.Scan(
			&dbFile.UID,
			&dbFile.Size,
			&dbFile.Format,
			&dbFile.OriginalName,
			&dbFile.Extension,
			&dbFile.UploadedToCloud,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning uploaded file: %w", err)
		}
		files = append(files, *dbFile.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating uploaded files: %w", err)
	}

	return files, nil
}

// MarkUploadedToCloud flips the cloud-sync flag for uid
func (s *sqlFileRepository) MarkUploadedToCloud(ctx context.Context, uid uuid.UUID) error {
	query := `UPDATE uploaded_file
              SET is_uploaded_to_cloud = TRUE
              WHERE uid = $1`

	result, err := s.db.ExecContext(ctx, query, uid)
	if err != nil {
		return fmt.Errorf("error updating uploaded file: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrFileNotFound
	}

	return nil
}

// dbUploadedFile represents an uploaded file record in DB
type dbUploadedFile struct {
	UID             uuid.UUID      `db:"uid"`
	Size            int64          `db:"size"`
	Format          string         `db:"format"`
	OriginalName    string         `db:"original_name"`
	Extension       sql.NullString `db:"extension"`
	UploadedToCloud bool           `db:"is_uploaded_to_cloud"`
}

// ToDomain converts to domain.UploadedFile
func (f *dbUploadedFile) ToDomain() *domain.UploadedFile {
	file := &domain.UploadedFile{
		UID:             f.UID,
		Size:            f.Size,
		Format:          f.Format,
		OriginalName:    f.OriginalName,
		UploadedToCloud: f.UploadedToCloud,
	}
	if f.Extension.Valid {
		file.Extension = &f.Extension.String
	}
	return file
}
