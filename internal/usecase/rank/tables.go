package rank

// Static affinity data for personalization. Loaded once at init, read-only
// afterwards; the ranker may serve concurrent requests without locks.

// collegeRelations maps a home college to the colleges treated as topically
// adjacent to it.
var collegeRelations = map[string][]string{
	"文学院":          {"新闻与传播学院", "汉语言文化学院", "外国语学院"},
	"历史学院":         {"文学院", "哲学院", "周恩来政府管理学院"},
	"物理科学学院":       {"电子信息与光学工程学院", "材料科学与工程学院"},
	"化学学院":         {"材料科学与工程学院", "生命科学学院", "医学院", "药学院"},
	"生命科学学院":       {"化学学院", "医学院", "药学院", "环境科学与工程学院"},
	"计算机与网络空间安全学院": {"软件学院", "人工智能学院", "数学科学学院"},
	"计算机学院":        {"软件学院", "人工智能学院", "数学科学学院"},
	"网络空间安全学院":     {"计算机学院", "软件学院", "数学科学学院"},
	"数学科学学院":       {"统计与数据科学学院", "计算机学院", "人工智能学院"},
	"经济学院":         {"商学院", "金融学院", "统计与数据科学学院"},
	"商学院":          {"经济学院", "金融学院", "旅游与服务学院"},
	"医学院":          {"生命科学学院", "药学院"},
	"周恩来政府管理学院":    {"法学院", "马克思主义学院", "历史学院"},
}

// collegeAliases maps a college to the shortened or variant names it appears
// under in page text. A match here is the second tier of the name-match check.
var collegeAliases = map[string][]string{
	"计算机与网络空间安全学院": {"计算机学院", "网安学院", "计算机与网安学院", "网络空间安全学院"},
	"文学院":          {"文学院", "中文系", "汉语言"},
	"商学院":          {"商学院", "MBA", "工商管理"},
	"医学院":          {"医学院", "附属医院", "临床医学"},
	"生命科学学院":       {"生科院", "生命学院", "生物学院"},
	"物理科学学院":       {"物理学院", "物理系"},
	"化学学院":         {"化学院", "化学系"},
	"数学科学学院":       {"数学院", "数学系"},
	"经济学院":         {"经济系", "经济管理"},
}

// relatedVariants supplements collegeRelations with alternate names of the
// adjacent colleges themselves.
var relatedVariants = map[string][]string{
	"计算机与网络空间安全学院": {"计算机学院", "网络空间安全学院", "信息科学学院"},
	"计算机学院":        {"计算机与网络空间安全学院", "软件学院", "信息科学学院"},
	"文学院":          {"新闻学院", "外国语学院", "汉语言文化学院"},
	"物理科学学院":       {"物理学院", "光学工程学院"},
	"化学学院":         {"化学系", "材料学院"},
	"医学院":          {"生命科学院", "药学院"},
	"商学院":          {"经济学院", "管理学院"},
}

// collegeKeywords maps a college to the context keywords scanned when neither
// the full name nor an alias appears in a hit.
var collegeKeywords = map[string][]string{
	"计算机与网络空间安全学院": {
		"编程", "算法", "软件", "人工智能", "网络",
		"网络安全", "信息安全", "密码学", "渗透测试",
		"实验室", "机房", "创新实践基地",
		"程序设计大赛", "编程竞赛", "ACM", "网络安全竞赛",
		"计算机科学", "软件工程", "网络工程", "信息安全",
	},
	"文学院": {
		"文学", "写作", "语言", "文化", "古籍",
		"图书馆", "文学社", "创作室",
		"诗歌朗诵", "读书会", "文学讲座", "创作比赛",
		"中国语言文学", "汉语言", "文艺学", "比较文学",
	},
	"物理科学学院": {
		"物理", "光学", "量子", "实验室", "力学",
		"电磁学", "热学", "光电", "激光",
	},
	"化学学院": {
		"化学", "分子", "实验", "材料", "有机化学",
		"无机化学", "分析化学", "物理化学",
	},
	"经济学院": {
		"经济", "金融", "贸易", "市场", "投资",
		"统计", "财务", "商业", "管理",
	},
	"医学院": {
		"医学", "临床", "病理", "解剖", "生理",
		"药理", "诊断", "治疗", "护理",
	},
	"生命科学学院": {
		"生物", "生态", "遗传", "细胞", "分子生物学",
		"生物技术", "生物信息学", "环境科学",
	},
	"商学院": {
		"管理", "市场营销", "会计", "财务", "人力资源",
		"工商管理", "MBA", "创业", "企业管理", "经济学",
	},
	"历史学院": {
		"历史", "考古", "文物", "史学", "中国史",
		"世界史", "历史研究", "历史讲座", "史料",
	},
	"外国语学院": {
		"英语", "翻译", "外语", "日语", "法语",
		"德语", "语言学", "外语教学", "口译", "笔译",
	},
	"数学科学学院": {
		"数学", "统计", "概率", "运筹学", "数学建模",
		"数据分析", "应用数学", "纯数学", "数理逻辑",
	},
}

// baseKeywords extend every college's keyword list.
var baseKeywords = []string{"科研", "实验室", "研究", "项目", "讲座", "活动"}

// Role affinity tags.
var (
	teacherAcademicTags = []string{"学术", "科研", "教学", "实验室", "课题"}
	teacherAdminTags    = []string{"教务", "师资", "课程"}
	studentTags         = []string{"学生", "教务", "活动", "奖学金"}
	studentActivityTags = []string{"就业", "实习", "竞赛", "夜跑", "社团", "活动"}
)

// activityTags mark campus activity content; they amplify a college match.
var activityTags = []string{"活动", "比赛", "夜跑", "讲座", "社团"}
