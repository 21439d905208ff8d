// Package vocabulary 维护技能识别所用的固定词表。
// 词表在进程启动时构建一次，运行期只读，可被并发解析安全共享。
package vocabulary

// Skill 词表条目。Canon 是匹配用的小写规范形式，Display 是命中后写入
// 结果的展示形式。展示形式是每个条目的显式元数据，而非运行期推导，
// 以保证行为可复现、可测试。
type Skill struct {
	Canon   string
	Display string
}

// Skills 固定的技能词表。匹配按此声明顺序进行；输出在去重后再按
// 展示形式做字典序排序，与这里的顺序无关。
// 按需在对应分类下补充新条目。
var Skills = []Skill{
	// 编程语言
	{"python", "Python"}, {"java", "JAVA"}, {"javascript", "Javascript"},
	{"typescript", "Typescript"}, {"c", "C"}, {"c++", "C++"}, {"c#", "C#"},
	{"ruby", "RUBY"}, {"go", "GO"}, {"rust", "RUST"}, {"swift", "Swift"},
	{"kotlin", "Kotlin"}, {"php", "PHP"}, {"r", "R"}, {"matlab", "Matlab"},
	{"scala", "Scala"}, {"perl", "PERL"}, {"bash", "BASH"}, {"shell", "Shell"},
	{"powershell", "Powershell"}, {"vba", "vba"}, {"dart", "DART"},
	{"lua", "LUA"}, {"haskell", "Haskell"}, {"elixir", "Elixir"},

	// Web 前端
	{"html", "html"}, {"css", "css"}, {"react", "React"}, {"angular", "Angular"},
	{"vue", "VUE"}, {"next.js", "next.js"}, {"nuxt.js", "nuxt.js"},
	{"jquery", "Jquery"}, {"bootstrap", "Bootstrap"}, {"tailwind", "Tailwind"},
	{"sass", "SASS"}, {"less", "LESS"}, {"webpack", "Webpack"}, {"vite", "VITE"},
	{"redux", "Redux"}, {"svelte", "Svelte"},

	// Web 后端
	{"node.js", "node.js"}, {"express", "Express"}, {"django", "Django"},
	{"flask", "Flask"}, {"fastapi", "Fastapi"}, {"spring", "Spring"},
	{"asp.net", "asp.net"}, {"laravel", "Laravel"}, {"rails", "Rails"},
	{"graphql", "Graphql"}, {"rest", "REST"}, {"soap", "SOAP"}, {"api", "api"},
	{"swagger", "Swagger"}, {"microservices", "Microservices"},

	// 数据库
	{"sql", "sql"}, {"mysql", "Mysql"}, {"postgresql", "Postgresql"},
	{"mongodb", "Mongodb"}, {"sqlite", "Sqlite"}, {"redis", "Redis"},
	{"cassandra", "Cassandra"}, {"elasticsearch", "Elasticsearch"},
	{"oracle", "Oracle"}, {"mssql", "Mssql"}, {"dynamodb", "Dynamodb"},
	{"firebase", "Firebase"}, {"neo4j", "Neo4J"}, {"mariadb", "Mariadb"},
	{"couchdb", "Couchdb"}, {"influxdb", "Influxdb"},

	// 云与 DevOps
	{"aws", "aws"}, {"azure", "Azure"}, {"gcp", "gcp"}, {"docker", "Docker"},
	{"kubernetes", "Kubernetes"}, {"jenkins", "Jenkins"}, {"ci/cd", "ci/cd"},
	{"terraform", "Terraform"}, {"ansible", "Ansible"}, {"nginx", "Nginx"},
	{"apache", "Apache"}, {"linux", "Linux"}, {"git", "GIT"},
	{"github", "Github"}, {"gitlab", "Gitlab"}, {"bitbucket", "Bitbucket"},
	{"circleci", "Circleci"}, {"travis ci", "Travis Ci"}, {"helm", "HELM"},

	// 数据科学与机器学习
	{"machine learning", "Machine Learning"}, {"deep learning", "Deep Learning"},
	{"tensorflow", "Tensorflow"}, {"pytorch", "Pytorch"}, {"keras", "Keras"},
	{"scikit-learn", "Scikit-Learn"}, {"pandas", "Pandas"}, {"numpy", "Numpy"},
	{"matplotlib", "Matplotlib"}, {"seaborn", "Seaborn"}, {"nlp", "nlp"},
	{"computer vision", "Computer Vision"}, {"opencv", "Opencv"},
	{"huggingface", "Huggingface"}, {"transformers", "Transformers"},
	{"bert", "BERT"}, {"gpt", "GPT"}, {"llm", "LLM"},
	{"data analysis", "Data Analysis"}, {"data visualization", "Data Visualization"},
	{"statistics", "Statistics"}, {"hadoop", "Hadoop"}, {"spark", "Spark"},
	{"tableau", "Tableau"}, {"power bi", "Power Bi"}, {"data mining", "Data Mining"},
	{"feature engineering", "Feature Engineering"}, {"xgboost", "Xgboost"},
	{"lightgbm", "Lightgbm"}, {"random forest", "Random Forest"},
	{"neural network", "Neural Network"},

	// 移动端
	{"android", "Android"}, {"ios", "IOS"}, {"react native", "React Native"},
	{"flutter", "Flutter"}, {"xamarin", "Xamarin"}, {"ionic", "Ionic"},

	// 测试
	{"selenium", "Selenium"}, {"pytest", "Pytest"}, {"junit", "Junit"},
	{"jest", "JEST"}, {"mocha", "Mocha"}, {"cypress", "Cypress"},
	{"postman", "Postman"}, {"unit testing", "Unit Testing"},
	{"integration testing", "Integration Testing"},
	{"test automation", "Test Automation"},

	// 工具与平台
	{"jira", "JIRA"}, {"confluence", "Confluence"}, {"slack", "Slack"},
	{"trello", "Trello"}, {"figma", "Figma"}, {"photoshop", "Photoshop"},
	{"excel", "Excel"}, {"visual studio", "Visual Studio"}, {"vs code", "Vs Code"},
	{"intellij", "Intellij"}, {"eclipse", "Eclipse"}, {"jupyter", "Jupyter"},
	{"colab", "Colab"}, {"linux", "Linux"}, {"unix", "UNIX"},
	{"windows server", "Windows Server"}, {"bash", "BASH"}, {"vim", "VIM"},

	// 方法论
	{"agile", "Agile"}, {"scrum", "Scrum"}, {"kanban", "Kanban"},
	{"waterfall", "Waterfall"}, {"tdd", "tdd"}, {"bdd", "bdd"},
	{"devops", "Devops"}, {"project management", "Project Management"},

	// 软技能
	{"communication", "Communication"}, {"teamwork", "Teamwork"},
	{"leadership", "Leadership"}, {"problem solving", "Problem Solving"},
	{"critical thinking", "Critical Thinking"},
	{"time management", "Time Management"}, {"adaptability", "Adaptability"},
}

// ShortSkillMaxLen 短技能阈值。规范形式不超过该长度的条目使用
// 字母边界匹配，防止 "c"、"r"、"go" 之类命中长单词内部。
const ShortSkillMaxLen = 3
