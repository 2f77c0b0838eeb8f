package model

import "strings"

// DateLayout 反馈日期的存储格式（ISO 8601日期）
const DateLayout = "2006-01-02"

// 推荐意向的三个固定取值
const (
	RecommendYes   = "Sim"
	RecommendNo    = "Não"
	RecommendMaybe = "Talvez"
)

// Recommendations 合法的推荐取值集合
var Recommendations = []string{RecommendYes, RecommendNo, RecommendMaybe}

// DefaultCourses 初始课程列表，空库种子数据从这里抽取
var DefaultCourses = []string{
	"Python Básico",
	"Streamlit & Dashboard",
	"Análise de Dados com Pandas",
	"Introdução ao SQL",
	"Machine Learning Básico",
}

// Feedback 课程反馈记录，创建后不可变（无更新/删除操作）
// swagger:model
type Feedback struct {
	ID                uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID          string `gorm:"column:id_curso;type:text;not null;index;comment:课程名称" json:"courseId"`
	ContentQuality    int    `gorm:"column:qualidade_conteudo;not null;comment:内容质量评分1-5" json:"contentQuality"`
	InstructorQuality int    `gorm:"column:qualidade_instrutor;not null;comment:讲师质量评分1-5" json:"instructorQuality"`
	Recommendation    string `gorm:"column:recomendacao;type:text;not null;comment:是否推荐" json:"recommendation"`
	Comment           string `gorm:"column:comentario;type:text" json:"comment"`
	FeedbackDate      string `gorm:"column:data_feedback;type:text;not null" json:"feedbackDate"`

	// 展示用衍生列，每次加载时计算，不入库
	ContentStars    string `gorm:"-" json:"contentStars"`
	InstructorStars string `gorm:"-" json:"instructorStars"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}

// StarString 评分r对应r个星号
func StarString(rating int) string {
	if rating <= 0 {
		return ""
	}
	return strings.Repeat("★", rating)
}

// DeriveStars 填充衍生的星号列
func (f *Feedback) DeriveStars() {
	f.ContentStars = StarString(f.ContentQuality)
	f.InstructorStars = StarString(f.InstructorQuality)
}

// ValidRecommendation 判断推荐取值是否合法
func ValidRecommendation(value string) bool {
	for _, r := range Recommendations {
		if r == value {
			return true
		}
	}
	return false
}
