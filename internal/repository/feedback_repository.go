package repository

import (
	"curso_feedback_backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

// Create 追加一条反馈。单语句插入，由SQLite保证原子性。
func (r *FeedbackRepository) Create(feedback *model.Feedback) error {
	return r.DB.Create(feedback).Error
}

// CreateBatch 一次写入整批种子数据
func (r *FeedbackRepository) CreateBatch(feedbacks []model.Feedback) error {
	return r.DB.Create(&feedbacks).Error
}

// FindAll 按ID升序返回全部反馈
func (r *FeedbackRepository) FindAll() ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.DB.Order("id ASC").Find(&feedbacks).Error
	return feedbacks, err
}

func (r *FeedbackRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Feedback{}).Count(&count).Error
	return count, err
}
