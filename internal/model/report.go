package model

// SummaryMetrics 概要指标。均值和百分比在空数据集上为nil（JSON null），
// 前端据此展示“N/A”而不是0
// swagger:model
type SummaryMetrics struct {
	Total                int      `json:"total"`
	AvgContentQuality    *float64 `json:"avgContentQuality"`
	AvgInstructorQuality *float64 `json:"avgInstructorQuality"`
	RecommendPositivePct *float64 `json:"recommendPositivePct"`
}

// MonthlyQuality 按自然月分桶的质量均值
// swagger:model
type MonthlyQuality struct {
	Month                string  `json:"month"` // 排序键，YYYY-MM
	Label                string  `json:"label"` // 展示标签，如 Jan/25
	AvgContentQuality    float64 `json:"avgContentQuality"`
	AvgInstructorQuality float64 `json:"avgInstructorQuality"`
}

// RatingBucket 评分直方图的一个桶，出现次数为0的评分不输出
// swagger:model
type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// RatingDistribution 两个评分列各自的直方图
// swagger:model
type RatingDistribution struct {
	ContentQuality    []RatingBucket `json:"contentQuality"`
	InstructorQuality []RatingBucket `json:"instructorQuality"`
}

// Dashboard 单页一次性渲染所需的全部数据
// swagger:model
type Dashboard struct {
	Courses      []string           `json:"courses"`
	Summary      SummaryMetrics     `json:"summary"`
	MonthlyTrend []MonthlyQuality   `json:"monthlyTrend"`
	Distribution RatingDistribution `json:"distribution"`
	Feedbacks    []Feedback         `json:"feedbacks"`
}
