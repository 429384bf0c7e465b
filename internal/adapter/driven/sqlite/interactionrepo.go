package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tashu/studio/internal/domain/model"
	"github.com/tashu/studio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.InteractionStore = (*InteractionRepo)(nil)

// InteractionRepo is the SQLite implementation of the interaction mirror.
type InteractionRepo struct {
	db *DB
}

// NewInteractionRepo creates an InteractionRepo over db.
func NewInteractionRepo(db *DB) *InteractionRepo {
	return &InteractionRepo{db: db}
}

// GetImage returns the mirrored likes and comments of one image. Unknown
// keys come back zero-valued.
func (r *InteractionRepo) GetImage(ctx context.Context, key string) (model.ImageInteractions, error) {
	out := model.ImageInteractions{Comments: []model.Comment{}}

	err := r.db.conn.QueryRowContext(ctx,
		`SELECT likes FROM image_likes WHERE image_key = ?`, key,
	).Scan(&out.Likes)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return out, fmt.Errorf("get likes for %q: %w", key, err)
	}

	rows, err := r.db.conn.QueryContext(ctx,
		`SELECT id, username, body, likes, created_at
		 FROM image_comments WHERE image_key = ? ORDER BY created_at, id`, key,
	)
	if err != nil {
		return out, fmt.Errorf("get comments for %q: %w", key, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Comment
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Username, &c.Text, &c.Likes, &createdAt); err != nil {
			return out, fmt.Errorf("scan comment: %w", err)
		}
		c.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return out, fmt.Errorf("parse comment timestamp %q: %w", createdAt, err)
		}
		out.Comments = append(out.Comments, c)
	}
	if err := rows.Err(); err != nil {
		return out, fmt.Errorf("iterate comments for %q: %w", key, err)
	}

	return out, nil
}

// ApplyLike bumps the like count up or down, flooring at zero, and returns
// the image's count plus the mirror-wide total.
func (r *InteractionRepo) ApplyLike(ctx context.Context, key string, liked bool) (model.LikeTally, error) {
	var tally model.LikeTally

	var err error
	if liked {
		_, err = r.db.conn.ExecContext(ctx,
			`INSERT INTO image_likes (image_key, likes) VALUES (?, 1)
			 ON CONFLICT(image_key) DO UPDATE SET likes = likes + 1`, key)
	} else {
		_, err = r.db.conn.ExecContext(ctx,
			`INSERT INTO image_likes (image_key, likes) VALUES (?, 0)
			 ON CONFLICT(image_key) DO UPDATE SET likes = MAX(likes - 1, 0)`, key)
	}
	if err != nil {
		return tally, fmt.Errorf("apply like for %q: %w", key, err)
	}

	err = r.db.conn.QueryRowContext(ctx,
		`SELECT likes, (SELECT COALESCE(SUM(likes), 0) FROM image_likes)
		 FROM image_likes WHERE image_key = ?`, key,
	).Scan(&tally.Likes, &tally.TotalLikes)
	if err != nil {
		return tally, fmt.Errorf("tally likes for %q: %w", key, err)
	}

	return tally, nil
}

// AddComment inserts a comment and returns the image's comment count.
func (r *InteractionRepo) AddComment(ctx context.Context, key string, c model.Comment) (int, error) {
	_, err := r.db.conn.ExecContext(ctx,
		`INSERT INTO image_comments (id, image_key, username, body, likes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, key, c.Username, c.Text, c.Likes, c.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert comment for %q: %w", key, err)
	}

	var count int
	err = r.db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM image_comments WHERE image_key = ?`, key,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count comments for %q: %w", key, err)
	}

	return count, nil
}

// Stats aggregates the mirror: total likes, total comments, and the number
// of images touched by either.
func (r *InteractionRepo) Stats(ctx context.Context) (model.InteractionStats, error) {
	var stats model.InteractionStats

	err := r.db.conn.QueryRowContext(ctx,
		`SELECT
			(SELECT COALESCE(SUM(likes), 0) FROM image_likes),
			(SELECT COUNT(*) FROM image_comments),
			(SELECT COUNT(*) FROM (
				SELECT image_key FROM image_likes
				UNION
				SELECT image_key FROM image_comments
			))`,
	).Scan(&stats.TotalLikes, &stats.TotalComments, &stats.TotalImages)
	if err != nil {
		return stats, fmt.Errorf("aggregate interaction stats: %w", err)
	}

	return stats, nil
}
