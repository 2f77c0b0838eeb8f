package controller

import (
	"curso_feedback_backend/internal/model"
	"curso_feedback_backend/internal/service"
	"curso_feedback_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	feedbackService *service.FeedbackService
	reportService   *service.ReportService
}

func NewReportController(feedbackService *service.FeedbackService, reportService *service.ReportService) *ReportController {
	return &ReportController{
		feedbackService: feedbackService,
		reportService:   reportService,
	}
}

// 每个报表接口都是同一个同步流程：加载（可能命中缓存）→ 过滤 → 聚合
func (c *ReportController) loadFiltered(ctx *gin.Context) ([]model.Feedback, bool) {
	feedbacks, err := c.feedbackService.Load()
	if err != nil {
		util.LogInternalError(ctx, err)
		return nil, false
	}
	return c.reportService.FilterByCourse(feedbacks, ctx.Query("course")), true
}

// GetSummary godoc
// @Summary 概要指标
// @Description 反馈总数、内容/讲师质量均值、推荐率。空子集时均值为null
// @Tags 报表
// @Produce json
// @Param course query string false "课程过滤，缺省为全部"
// @Success 200 {object} util.Response{data=model.SummaryMetrics}
// @Router /reports/summary [get]
func (c *ReportController) GetSummary(ctx *gin.Context) {
	feedbacks, ok := c.loadFiltered(ctx)
	if !ok {
		return
	}
	util.Success(ctx, c.reportService.Summary(feedbacks))
}

// GetMonthlyTrend godoc
// @Summary 月度质量趋势
// @Description 按自然月分桶的质量均值序列，时间升序。无数据时返回空数组
// @Tags 报表
// @Produce json
// @Param course query string false "课程过滤，缺省为全部"
// @Success 200 {object} util.Response{data=[]model.MonthlyQuality}
// @Router /reports/monthly [get]
func (c *ReportController) GetMonthlyTrend(ctx *gin.Context) {
	feedbacks, ok := c.loadFiltered(ctx)
	if !ok {
		return
	}
	util.Success(ctx, c.reportService.MonthlyTrend(feedbacks))
}

// GetDistribution godoc
// @Summary 评分分布
// @Description 内容/讲师质量两列的1-5评分直方图
// @Tags 报表
// @Produce json
// @Param course query string false "课程过滤，缺省为全部"
// @Success 200 {object} util.Response{data=model.RatingDistribution}
// @Router /reports/distribution [get]
func (c *ReportController) GetDistribution(ctx *gin.Context) {
	feedbacks, ok := c.loadFiltered(ctx)
	if !ok {
		return
	}
	util.Success(ctx, c.reportService.Distribution(feedbacks))
}

// GetDashboard godoc
// @Summary 单页看板数据
// @Description 一次返回页面渲染所需的全部内容：课程列表、概要指标、月度趋势、评分分布和原始数据
// @Tags 报表
// @Produce json
// @Param course query string false "课程过滤，缺省为全部"
// @Success 200 {object} util.Response{data=model.Dashboard}
// @Router /dashboard [get]
func (c *ReportController) GetDashboard(ctx *gin.Context) {
	feedbacks, err := c.feedbackService.Load()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	filtered := c.reportService.FilterByCourse(feedbacks, ctx.Query("course"))

	util.Success(ctx, model.Dashboard{
		Courses:      c.reportService.Courses(feedbacks),
		Summary:      c.reportService.Summary(filtered),
		MonthlyTrend: c.reportService.MonthlyTrend(filtered),
		Distribution: c.reportService.Distribution(filtered),
		Feedbacks:    filtered,
	})
}
