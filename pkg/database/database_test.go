package database

import (
	"path/filepath"
	"testing"

	"curso_feedback_backend/internal/config"
	"curso_feedback_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 初始化是幂等的：重复执行不改变表结构，也不触碰已有数据
func TestInitDBIdempotent(t *testing.T) {
	cfg := &config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "feedback.db")}

	db, err := InitDB(cfg)
	require.NoError(t, err)

	require.NoError(t, db.Create(&model.Feedback{
		CourseID:          "Python Básico",
		ContentQuality:    5,
		InstructorQuality: 5,
		Recommendation:    model.RecommendYes,
		FeedbackDate:      "2025-01-01",
	}).Error)

	db2, err := InitDB(cfg)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db2.Model(&model.Feedback{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var stored model.Feedback
	require.NoError(t, db2.First(&stored).Error)
	assert.Equal(t, "Python Básico", stored.CourseID)
	assert.Equal(t, 5, stored.ContentQuality)
}
