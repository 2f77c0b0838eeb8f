package service

import (
	"sort"
	"time"

	"curso_feedback_backend/internal/model"
)

// ReportService 聚合计算。所有方法都是输入数据集上的纯函数，
// 过滤由调用方先行完成。
type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

// FilterByCourse 精确匹配课程；course为空表示不过滤
func (s *ReportService) FilterByCourse(feedbacks []model.Feedback, course string) []model.Feedback {
	if course == "" {
		return feedbacks
	}
	filtered := make([]model.Feedback, 0)
	for _, f := range feedbacks {
		if f.CourseID == course {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// Summary 概要指标。空子集时均值和百分比为nil，避免除零
func (s *ReportService) Summary(feedbacks []model.Feedback) model.SummaryMetrics {
	summary := model.SummaryMetrics{Total: len(feedbacks)}
	if len(feedbacks) == 0 {
		return summary
	}

	var contentSum, instructorSum, positive int
	for _, f := range feedbacks {
		contentSum += f.ContentQuality
		instructorSum += f.InstructorQuality
		if f.Recommendation == model.RecommendYes {
			positive++
		}
	}

	total := float64(len(feedbacks))
	summary.AvgContentQuality = floatPtr(float64(contentSum) / total)
	summary.AvgInstructorQuality = floatPtr(float64(instructorSum) / total)
	summary.RecommendPositivePct = floatPtr(float64(positive) / total * 100)
	return summary
}

// MonthlyTrend 按反馈日期的自然月分桶，每桶计算两列质量均值，
// 按时间升序返回。空子集返回空序列。
func (s *ReportService) MonthlyTrend(feedbacks []model.Feedback) []model.MonthlyQuality {
	type bucket struct {
		contentSum    int
		instructorSum int
		count         int
	}

	buckets := make(map[string]*bucket)
	for _, f := range feedbacks {
		date, err := time.Parse(model.DateLayout, f.FeedbackDate)
		if err != nil {
			continue
		}
		key := date.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.contentSum += f.ContentQuality
		b.instructorSum += f.InstructorQuality
		b.count++
	}

	months := make([]string, 0, len(buckets))
	for key := range buckets {
		months = append(months, key)
	}
	sort.Strings(months)

	trend := make([]model.MonthlyQuality, 0, len(months))
	for _, key := range months {
		b := buckets[key]
		date, _ := time.Parse("2006-01", key)
		trend = append(trend, model.MonthlyQuality{
			Month:                key,
			Label:                date.Format("Jan/06"),
			AvgContentQuality:    float64(b.contentSum) / float64(b.count),
			AvgInstructorQuality: float64(b.instructorSum) / float64(b.count),
		})
	}
	return trend
}

// Distribution 两个评分列的1-5直方图，只输出出现过的评分，按评分升序
func (s *ReportService) Distribution(feedbacks []model.Feedback) model.RatingDistribution {
	return model.RatingDistribution{
		ContentQuality:    histogram(feedbacks, func(f model.Feedback) int { return f.ContentQuality }),
		InstructorQuality: histogram(feedbacks, func(f model.Feedback) int { return f.InstructorQuality }),
	}
}

// Courses 数据集中出现过的课程，按首次出现顺序（用于课程选择器）
func (s *ReportService) Courses(feedbacks []model.Feedback) []string {
	seen := make(map[string]bool)
	courses := make([]string, 0)
	for _, f := range feedbacks {
		if !seen[f.CourseID] {
			seen[f.CourseID] = true
			courses = append(courses, f.CourseID)
		}
	}
	return courses
}

func histogram(feedbacks []model.Feedback, rating func(model.Feedback) int) []model.RatingBucket {
	counts := make(map[int]int)
	for _, f := range feedbacks {
		counts[rating(f)]++
	}

	result := make([]model.RatingBucket, 0, len(counts))
	for value := 1; value <= 5; value++ {
		if count, ok := counts[value]; ok {
			result = append(result, model.RatingBucket{Rating: value, Count: count})
		}
	}
	return result
}

func floatPtr(v float64) *float64 {
	return &v
}
