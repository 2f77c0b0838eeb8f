package service

import (
	"math/rand"
	"sync"
	"time"

	"curso_feedback_backend/internal/config"
	"curso_feedback_backend/internal/model"
	"curso_feedback_backend/internal/repository"
	"curso_feedback_backend/internal/util"
	"curso_feedback_backend/pkg/logger"

	"go.uber.org/zap"
)

// seedRandSource 固定随机种子，保证种子数据可复现
const seedRandSource = 42

var seedStartDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// FeedbackService 持有进程内的记忆化数据集：上次加载的全量反馈加一个
// 有效标志。成功提交后仅使标志失效，下次Load重新读库。
type FeedbackService struct {
	repo    *repository.FeedbackRepository
	seedCfg config.SeedConfig

	mu    sync.RWMutex
	cache []model.Feedback
	valid bool
}

func NewFeedbackService(repo *repository.FeedbackRepository, cfg *config.Config) *FeedbackService {
	return &FeedbackService{
		repo:    repo,
		seedCfg: cfg.Seed,
	}
}

// Load 返回全部反馈（含衍生星号列）。命中缓存时不访问存储；
// 空库且启用种子时先生成种子数据。返回的切片视为只读。
func (s *FeedbackService) Load() ([]model.Feedback, error) {
	s.mu.RLock()
	if s.valid {
		cached := s.cache
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// 等锁期间可能已有并发加载完成
	if s.valid {
		return s.cache, nil
	}

	stored, err := s.repo.Count()
	if err != nil {
		return nil, err
	}

	var feedbacks []model.Feedback
	if stored == 0 && s.seedCfg.Enabled && s.seedCfg.Count > 0 {
		feedbacks, err = s.seed()
		if err != nil {
			return nil, err
		}
		logger.Log.Info("Seeded empty feedback store", zap.Int("count", len(feedbacks)))
	} else {
		feedbacks, err = s.repo.FindAll()
		if err != nil {
			return nil, err
		}
	}

	for i := range feedbacks {
		feedbacks[i].DeriveStars()
	}

	s.cache = feedbacks
	s.valid = true
	return feedbacks, nil
}

// Invalidate 无条件丢弃缓存，下一次Load重新读库
func (s *FeedbackService) Invalidate() {
	s.mu.Lock()
	s.cache = nil
	s.valid = false
	s.mu.Unlock()
}

// seed 生成固定数量的模拟反馈并整批入库。课程、评分、推荐均匀抽取，
// 日期从2025-01-01起每周递增，评论留空。仅在空库上执行一次。
func (s *FeedbackService) seed() ([]model.Feedback, error) {
	r := rand.New(rand.NewSource(seedRandSource))

	feedbacks := make([]model.Feedback, s.seedCfg.Count)
	for i := range feedbacks {
		feedbacks[i] = model.Feedback{
			CourseID:          model.DefaultCourses[r.Intn(len(model.DefaultCourses))],
			ContentQuality:    r.Intn(5) + 1,
			InstructorQuality: r.Intn(5) + 1,
			Recommendation:    model.Recommendations[r.Intn(len(model.Recommendations))],
			Comment:           "",
			FeedbackDate:      seedStartDate.AddDate(0, 0, 7*i).Format(model.DateLayout),
		}
	}

	if err := s.repo.CreateBatch(feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// Submit 校验并写入一条反馈。成功后使缓存失效；写入失败时缓存保持
// 有效，因为存储内容没有变化。
func (s *FeedbackService) Submit(course string, contentQuality, instructorQuality int, recommendation, comment string) (*model.Feedback, error) {
	if contentQuality < 1 || contentQuality > 5 || instructorQuality < 1 || instructorQuality > 5 {
		return nil, util.ErrRatingOutOfRange
	}
	if !model.ValidRecommendation(recommendation) {
		return nil, util.ErrInvalidRecommendation
	}

	known, err := s.KnownCourses()
	if err != nil {
		return nil, err
	}
	if !contains(known, course) {
		return nil, util.ErrUnknownCourse
	}

	feedback := &model.Feedback{
		CourseID:          course,
		ContentQuality:    contentQuality,
		InstructorQuality: instructorQuality,
		Recommendation:    recommendation,
		Comment:           comment,
		FeedbackDate:      time.Now().Format(model.DateLayout),
	}

	if err := s.repo.Create(feedback); err != nil {
		return nil, err
	}

	feedback.DeriveStars()
	s.Invalidate()
	return feedback, nil
}

// KnownCourses 当前可选的课程列表：数据集中出现过的课程（按首次出现顺序）；
// 数据集为空时退回初始课程列表，保证表单始终可提交
func (s *FeedbackService) KnownCourses() ([]string, error) {
	feedbacks, err := s.Load()
	if err != nil {
		return nil, err
	}
	if len(feedbacks) == 0 {
		return model.DefaultCourses, nil
	}

	seen := make(map[string]bool)
	courses := make([]string, 0)
	for _, f := range feedbacks {
		if !seen[f.CourseID] {
			seen[f.CourseID] = true
			courses = append(courses, f.CourseID)
		}
	}
	return courses, nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
