package i18n

// Keys.
const (
	KeyAppTitle        = "app.title"
	KeyLearn           = "section.learn"
	KeyChampion        = "section.champion"
	KeyPracticeDesc    = "section.learn.description"
	KeyCompeteDesc     = "section.champion.description"
	KeyComingSoon      = "champion.coming_soon"
	KeyBack            = "nav.back"
	KeyDone            = "nav.done"
	KeySettings        = "nav.settings"
	KeyProgress        = "nav.progress"
	KeyProgressTitle   = "progress.title"
	KeyTotal           = "progress.total"
	KeyProblems        = "progress.problems"
	KeyAccuracy        = "progress.accuracy"
	KeyStreak          = "progress.streak"
	KeyLevelScore      = "game.level_score"
	KeyLevel           = "game.level"
	KeyCorrect         = "feedback.correct"
	KeyTryAgain        = "feedback.try_again"
	KeyGreaterThan     = "comparison.greater"
	KeyLessThan        = "comparison.less"
	KeyTypeAnswer      = "game.type_answer"
	KeyLanguage        = "settings.language"
	KeySystem          = "language.system"
	KeyEnglish         = "language.english"
	KeyChinese         = "language.chinese"
	KeyVietnamese      = "language.vietnamese"
	KeyResetProgress   = "settings.reset"
	KeyResetDone       = "settings.reset_done"
	KeyHistory         = "nav.history"
	KeyExit            = "nav.exit"
	KeyNoHistory       = "history.empty"
	KeyResetConfirm    = "settings.reset_confirm"
	KeyTitleAddition   = "game.addition.title"
	KeyTitleSubtract   = "game.subtraction.title"
	KeyTitleMultiply   = "game.multiplication.title"
	KeyTitleDivision   = "game.division.title"
	KeyTitleComparison = "game.comparison.title"
	KeyTitleFractions  = "game.fractions.title"
	KeyTitleDecimals   = "game.decimals.title"
)

var catalog = map[Language]map[string]string{
	English: {
		KeyAppTitle:        "Happy Math!",
		KeyLearn:           "Learn",
		KeyChampion:        "Champion",
		KeyPracticeDesc:    "Practice math skills at your own pace",
		KeyCompeteDesc:     "Challenge yourself and compete with others",
		KeyComingSoon:      "Coming soon!",
		KeyBack:            "Back",
		KeyDone:            "Done",
		KeySettings:        "Settings",
		KeyProgress:        "Progress",
		KeyProgressTitle:   "Game Progress",
		KeyTotal:           "Total",
		KeyProblems:        "Problems",
		KeyAccuracy:        "Accuracy",
		KeyStreak:          "Streak",
		KeyLevelScore:      "Level %d • %d/%d",
		KeyLevel:           "Level %d",
		KeyCorrect:         "Correct! 🎉",
		KeyTryAgain:        "Try again! 😊",
		KeyGreaterThan:     "Greater than",
		KeyLessThan:        "Less than",
		KeyTypeAnswer:      "Type your answer",
		KeyLanguage:        "Language",
		KeySystem:          "System",
		KeyEnglish:         "English",
		KeyChinese:         "Chinese",
		KeyVietnamese:      "Vietnamese",
		KeyResetProgress:   "Reset progress",
		KeyHistory:         "History",
		KeyExit:            "Exit",
		KeyNoHistory:       "No answers yet. Let's play!",
		KeyResetConfirm:    "Press Enter again to reset",
		KeyResetDone:       "Progress reset",
		KeyTitleAddition:   "Addition Fun",
		KeyTitleSubtract:   "Subtraction Fun",
		KeyTitleMultiply:   "Multiplication Magic",
		KeyTitleDivision:   "Division Quest",
		KeyTitleComparison: "Number Compare",
		KeyTitleFractions:  "Fraction Fun",
		KeyTitleDecimals:   "Decimal Dash",
	},
	Chinese: {
		KeyAppTitle:        "快乐数学！",
		KeyLearn:           "学习",
		KeyChampion:        "冠军",
		KeyPracticeDesc:    "按照自己的节奏练习数学技能",
		KeyCompeteDesc:     "挑战自己，与他人竞争",
		KeyComingSoon:      "即将推出！",
		KeyBack:            "返回",
		KeyDone:            "完成",
		KeySettings:        "设置",
		KeyProgress:        "进度",
		KeyProgressTitle:   "游戏进度",
		KeyTotal:           "总计",
		KeyProblems:        "题目",
		KeyAccuracy:        "正确率",
		KeyStreak:          "连胜",
		KeyLevelScore:      "等级 %d • %d/%d",
		KeyLevel:           "等级 %d",
		KeyCorrect:         "正确！🎉",
		KeyTryAgain:        "再试一次！😊",
		KeyGreaterThan:     "大于",
		KeyLessThan:        "小于",
		KeyTypeAnswer:      "输入答案",
		KeyLanguage:        "语言",
		KeySystem:          "系统",
		KeyEnglish:         "英语",
		KeyChinese:         "中文",
		KeyVietnamese:      "越南语",
		KeyResetProgress:   "重置进度",
		KeyHistory:         "历史",
		KeyExit:            "退出",
		KeyNoHistory:       "还没有答题记录，开始玩吧！",
		KeyResetConfirm:    "再按一次回车确认重置",
		KeyResetDone:       "进度已重置",
		KeyTitleAddition:   "加法乐趣",
		KeyTitleSubtract:   "减法乐趣",
		KeyTitleMultiply:   "乘法魔法",
		KeyTitleDivision:   "除法探索",
		KeyTitleComparison: "数字比较",
		KeyTitleFractions:  "分数乐趣",
		KeyTitleDecimals:   "小数冲刺",
	},
	Vietnamese: {
		KeyAppTitle:        "Toán Vui!",
		KeyLearn:           "Học tập",
		KeyChampion:        "Vô địch",
		KeyPracticeDesc:    "Luyện tập kỹ năng toán học theo tốc độ của bạn",
		KeyCompeteDesc:     "Thử thách bản thân và thi đấu với người khác",
		KeyComingSoon:      "Sắp ra mắt!",
		KeyBack:            "Quay lại",
		KeyDone:            "Xong",
		KeySettings:        "Cài đặt",
		KeyProgress:        "Tiến độ",
		KeyProgressTitle:   "Tiến độ trò chơi",
		KeyTotal:           "Tổng cộng",
		KeyProblems:        "Bài toán",
		KeyAccuracy:        "Độ chính xác",
		KeyStreak:          "Chuỗi đúng",
		KeyLevelScore:      "Cấp %d • %d/%d",
		KeyLevel:           "Cấp %d",
		KeyCorrect:         "Đúng rồi! 🎉",
		KeyTryAgain:        "Thử lại nhé! 😊",
		KeyGreaterThan:     "Lớn hơn",
		KeyLessThan:        "Nhỏ hơn",
		KeyTypeAnswer:      "Nhập câu trả lời",
		KeyLanguage:        "Ngôn ngữ",
		KeySystem:          "Hệ thống",
		KeyEnglish:         "Tiếng Anh",
		KeyChinese:         "Tiếng Trung",
		KeyVietnamese:      "Tiếng Việt",
		KeyResetProgress:   "Đặt lại tiến độ",
		KeyHistory:         "Lịch sử",
		KeyExit:            "Thoát",
		KeyNoHistory:       "Chưa có câu trả lời nào. Chơi thôi!",
		KeyResetConfirm:    "Nhấn Enter lần nữa để đặt lại",
		KeyResetDone:       "Đã đặt lại tiến độ",
		KeyTitleAddition:   "Phép Cộng",
		KeyTitleSubtract:   "Phép Trừ",
		KeyTitleMultiply:   "Phép Nhân",
		KeyTitleDivision:   "Phép Chia",
		KeyTitleComparison: "So Sánh",
		KeyTitleFractions:  "Phân Số",
		KeyTitleDecimals:   "Số Thập Phân",
	},
}
