package service

import (
	"testing"

	"curso_feedback_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedbacksWithContent(ratings ...int) []model.Feedback {
	feedbacks := make([]model.Feedback, len(ratings))
	for i, r := range ratings {
		feedbacks[i] = model.Feedback{
			CourseID:          "Python Básico",
			ContentQuality:    r,
			InstructorQuality: 3,
			Recommendation:    model.RecommendYes,
			FeedbackDate:      "2025-03-10",
		}
	}
	return feedbacks
}

func TestSummary(t *testing.T) {
	s := NewReportService()

	summary := s.Summary(feedbacksWithContent(1, 2, 2, 5))

	assert.Equal(t, 4, summary.Total)
	require.NotNil(t, summary.AvgContentQuality)
	assert.InDelta(t, 2.5, *summary.AvgContentQuality, 1e-9)
	require.NotNil(t, summary.AvgInstructorQuality)
	assert.InDelta(t, 3.0, *summary.AvgInstructorQuality, 1e-9)
	require.NotNil(t, summary.RecommendPositivePct)
	assert.InDelta(t, 100.0, *summary.RecommendPositivePct, 1e-9)
}

func TestSummaryRecommendationPercentage(t *testing.T) {
	s := NewReportService()

	feedbacks := feedbacksWithContent(3, 3, 3, 3)
	feedbacks[1].Recommendation = model.RecommendNo
	feedbacks[2].Recommendation = model.RecommendMaybe

	summary := s.Summary(feedbacks)
	require.NotNil(t, summary.RecommendPositivePct)
	assert.InDelta(t, 50.0, *summary.RecommendPositivePct, 1e-9)
}

// 空子集上的聚合必须返回“不可用”哨兵，而不是0或NaN
func TestSummaryEmpty(t *testing.T) {
	s := NewReportService()

	summary := s.Summary(nil)

	assert.Equal(t, 0, summary.Total)
	assert.Nil(t, summary.AvgContentQuality)
	assert.Nil(t, summary.AvgInstructorQuality)
	assert.Nil(t, summary.RecommendPositivePct)
}

func TestSummaryDeterministic(t *testing.T) {
	s := NewReportService()
	feedbacks := feedbacksWithContent(1, 4, 5, 2, 3)

	first := s.Summary(feedbacks)
	second := s.Summary(feedbacks)

	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, *first.AvgContentQuality, *second.AvgContentQuality)
	assert.Equal(t, *first.RecommendPositivePct, *second.RecommendPositivePct)
}

func TestDistribution(t *testing.T) {
	s := NewReportService()

	dist := s.Distribution(feedbacksWithContent(1, 2, 2, 5))

	// 评分3和4没有出现，不输出
	assert.Equal(t, []model.RatingBucket{
		{Rating: 1, Count: 1},
		{Rating: 2, Count: 2},
		{Rating: 5, Count: 1},
	}, dist.ContentQuality)

	assert.Equal(t, []model.RatingBucket{
		{Rating: 3, Count: 4},
	}, dist.InstructorQuality)
}

func TestDistributionCountsSumToTotal(t *testing.T) {
	s := NewReportService()
	feedbacks := feedbacksWithContent(1, 1, 2, 3, 3, 3, 4, 5, 5, 5)

	dist := s.Distribution(feedbacks)

	sum := 0
	for _, bucket := range dist.ContentQuality {
		sum += bucket.Count
	}
	assert.Equal(t, len(feedbacks), sum)
}

func TestDistributionEmpty(t *testing.T) {
	s := NewReportService()

	dist := s.Distribution(nil)

	assert.Empty(t, dist.ContentQuality)
	assert.Empty(t, dist.InstructorQuality)
}

func TestMonthlyTrend(t *testing.T) {
	s := NewReportService()

	feedbacks := []model.Feedback{
		{ContentQuality: 4, InstructorQuality: 2, FeedbackDate: "2025-02-10"},
		{ContentQuality: 2, InstructorQuality: 4, FeedbackDate: "2025-02-28"},
		{ContentQuality: 5, InstructorQuality: 5, FeedbackDate: "2025-01-31"},
	}

	trend := s.MonthlyTrend(feedbacks)

	require.Len(t, trend, 2)

	// 时间升序，月末日期归入自身所在的自然月
	assert.Equal(t, "2025-01", trend[0].Month)
	assert.Equal(t, "Jan/25", trend[0].Label)
	assert.InDelta(t, 5.0, trend[0].AvgContentQuality, 1e-9)

	assert.Equal(t, "2025-02", trend[1].Month)
	assert.Equal(t, "Feb/25", trend[1].Label)
	assert.InDelta(t, 3.0, trend[1].AvgContentQuality, 1e-9)
	assert.InDelta(t, 3.0, trend[1].AvgInstructorQuality, 1e-9)
}

func TestMonthlyTrendEmpty(t *testing.T) {
	s := NewReportService()

	assert.Empty(t, s.MonthlyTrend(nil))
}

func TestFilterByCourse(t *testing.T) {
	s := NewReportService()

	feedbacks := []model.Feedback{
		{CourseID: "Python Básico"},
		{CourseID: "Introdução ao SQL"},
		{CourseID: "Python Básico"},
	}

	filtered := s.FilterByCourse(feedbacks, "Python Básico")
	assert.Len(t, filtered, 2)

	// 空过滤条件返回全部
	assert.Len(t, s.FilterByCourse(feedbacks, ""), 3)

	// 无匹配课程返回空子集
	assert.Empty(t, s.FilterByCourse(feedbacks, "Machine Learning Básico"))
}

func TestCourses(t *testing.T) {
	s := NewReportService()

	feedbacks := []model.Feedback{
		{CourseID: "Introdução ao SQL"},
		{CourseID: "Python Básico"},
		{CourseID: "Introdução ao SQL"},
	}

	assert.Equal(t, []string{"Introdução ao SQL", "Python Básico"}, s.Courses(feedbacks))
}
