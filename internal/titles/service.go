package titles

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/gerador-ia/backend/internal/logger"
)

// Service owns the titles table: per-user history of generated copy.
type Service struct {
	logger *logger.Logger
	db     *sql.DB
}

// NewService creates a new titles service.
func NewService(logger *logger.Logger, db *sql.DB) *Service {
	return &Service{
		logger: logger,
		db:     db,
	}
}

// List returns all titles belonging to userID, newest first.
// An owner with no records gets an empty slice, not an error.
func (s *Service) List(ctx context.Context, userID string) ([]Title, error) {
	log := s.logger.WithComponent("titles-service")

	query := `
		SELECT id, titulo, descricao, user_id
		FROM titles
		WHERE user_id = ?
		ORDER BY id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query titles",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to query titles: %w", err)
	}
	defer rows.Close()

	results := make([]Title, 0)
	for rows.Next() {
		var t Title
		if err := rows.Scan(&t.ID, &t.Titulo, &t.Descricao, &t.UserID); err != nil {
			log.Error("failed to scan title row",
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan title: %w", err)
		}
		results = append(results, t)
	}

	if err = rows.Err(); err != nil {
		log.Error("error iterating title rows",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("error iterating titles: %w", err)
	}

	log.Debug("titles listed",
		slog.String("user_id", userID),
		slog.Int("count", len(results)))

	return results, nil
}

// Create inserts a new title row and returns it with its assigned id.
func (s *Service) Create(ctx context.Context, titulo, descricao, userID string) (Title, error) {
	log := s.logger.WithComponent("titles-service")

	if titulo == "" {
		return Title{}, fmt.Errorf("%w: titulo must not be empty", ErrValidation)
	}
	if descricao == "" {
		return Title{}, fmt.Errorf("%w: descricao must not be empty", ErrValidation)
	}
	if userID == "" {
		return Title{}, fmt.Errorf("%w: user_id must not be empty", ErrValidation)
	}

	query := `
		INSERT INTO titles (titulo, descricao, user_id)
		VALUES (?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query, titulo, descricao, userID)
	if err != nil {
		log.Error("failed to insert title",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return Title{}, fmt.Errorf("failed to insert title: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Error("failed to get inserted title id",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return Title{}, fmt.Errorf("failed to get inserted title id: %w", err)
	}

	log.Debug("title created",
		slog.Int64("id", id),
		slog.String("user_id", userID))

	return Title{
		ID:        id,
		Titulo:    titulo,
		Descricao: descricao,
		UserID:    userID,
	}, nil
}

// Delete permanently removes the title with the given id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	log := s.logger.WithComponent("titles-service")

	query := `
		DELETE FROM titles
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete title",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete title: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	log.Debug("title deleted", slog.Int64("id", id))

	return nil
}
