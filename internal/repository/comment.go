package repository

import (
	"context"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/comment"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"gorm.io/gorm"
)

//go:generate mockgen -source=comment.go -destination=mock/comment_mock.go -package=mock

type CommentRepo interface {
	ListCommentsByTicket(ctx context.Context, ticketID uint, page query.Page) ([]comment.Comment, int64, error)
	GetCommentByID(ctx context.Context, id uint) (comment.Comment, error)
	CreateComment(ctx context.Context, c *comment.Comment) error
	UpdateComment(ctx context.Context, c *comment.Comment) error
	DeleteComment(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) CommentRepo
}

type DBCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *DBCommentRepo {
	return &DBCommentRepo{
		db: db,
	}
}

func (r *DBCommentRepo) ListCommentsByTicket(ctx context.Context, ticketID uint, page query.Page) ([]comment.Comment, int64, error) {
	q := r.db.WithContext(ctx).Model(&comment.Comment{}).Where("ticket_id = ?", ticketID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []comment.Comment
	err := q.Preload("User").
		Order("created_at ASC, id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&comments).Error
	return comments, total, err
}

func (r *DBCommentRepo) GetCommentByID(ctx context.Context, id uint) (comment.Comment, error) {
	var c comment.Comment
	err := r.db.WithContext(ctx).Preload("User").First(&c, id).Error
	return c, err
}

func (r *DBCommentRepo) CreateComment(ctx context.Context, c *comment.Comment) error {
	return r.db.WithContext(ctx).Omit("User").Create(c).Error
}

func (r *DBCommentRepo) UpdateComment(ctx context.Context, c *comment.Comment) error {
	return r.db.WithContext(ctx).Omit("User").Save(c).Error
}

func (r *DBCommentRepo) DeleteComment(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&comment.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBCommentRepo) WithTx(tx *gorm.DB) CommentRepo {
	if tx == nil {
		return r
	}
	return &DBCommentRepo{
		db: tx,
	}
}
