package controller

import (
	"errors"

	"curso_feedback_backend/internal/service"
	"curso_feedback_backend/internal/util"
	"curso_feedback_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	feedbackService *service.FeedbackService
	reportService   *service.ReportService
}

func NewFeedbackController(feedbackService *service.FeedbackService, reportService *service.ReportService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
		reportService:   reportService,
	}
}

type CreateFeedbackRequest struct {
	Course            string `json:"course" binding:"required"`
	ContentQuality    int    `json:"contentQuality" binding:"required,min=1,max=5"`
	InstructorQuality int    `json:"instructorQuality" binding:"required,min=1,max=5"`
	Recommendation    string `json:"recommendation" binding:"required,oneof=Sim Não Talvez"`
	Comment           string `json:"comment"`
}

// CreateFeedback godoc
// @Summary 提交课程反馈
// @Description 写入一条反馈记录，日期取服务器当天。成功后缓存失效，下次读取回库
// @Tags 反馈
// @Accept json
// @Produce json
// @Param body body CreateFeedbackRequest true "反馈内容"
// @Success 201 {object} util.Response{data=model.Feedback}
// @Failure 400 {object} util.Response
// @Router /feedbacks [post]
func (c *FeedbackController) CreateFeedback(ctx *gin.Context) {
	var req CreateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	feedback, err := c.feedbackService.Submit(req.Course, req.ContentQuality, req.InstructorQuality, req.Recommendation, req.Comment)
	if err != nil {
		if errors.Is(err, util.ErrUnknownCourse) ||
			errors.Is(err, util.ErrRatingOutOfRange) ||
			errors.Is(err, util.ErrInvalidRecommendation) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.FeedbackSubmissions.WithLabelValues(feedback.CourseID).Inc()
	util.Created(ctx, feedback)
}

// ListFeedbacks godoc
// @Summary 原始反馈数据
// @Description 返回（可按课程过滤的）全部反馈，含展示用星号列
// @Tags 反馈
// @Produce json
// @Param course query string false "课程过滤，缺省为全部"
// @Success 200 {object} util.Response{data=[]model.Feedback}
// @Router /feedbacks [get]
func (c *FeedbackController) ListFeedbacks(ctx *gin.Context) {
	feedbacks, err := c.feedbackService.Load()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	filtered := c.reportService.FilterByCourse(feedbacks, ctx.Query("course"))
	util.Success(ctx, filtered)
}

// ListCourses godoc
// @Summary 课程列表
// @Description 当前已知课程，用于填充课程选择器
// @Tags 反馈
// @Produce json
// @Success 200 {object} util.Response{data=[]string}
// @Router /courses [get]
func (c *FeedbackController) ListCourses(ctx *gin.Context) {
	courses, err := c.feedbackService.KnownCourses()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}
