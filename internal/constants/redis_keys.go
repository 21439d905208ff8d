package constants

// Redis Key 前缀和格式常量
// 使用统一的命名规范: app:{module}:{entity}:{unique_id}
const (
	// AppPrefix 是所有Redis Key的统一应用前缀
	AppPrefix = "app"

	// ResumeModulePrefix 简历模块
	ResumeModulePrefix = "resume"
	// JDModulePrefix 岗位描述模块
	JDModulePrefix = "jd"

	// EntityDedupSet 去重集合实体
	EntityDedupSet = "dedup_set"
	// EntitySkills 检出技能实体
	EntitySkills = "skills"
	// EntityLock 分布式锁实体
	EntityLock = "lock"

	// KeyRawFileMD5Set 原始文件MD5去重集合 (SET)
	// 格式: app:resume:dedup_set
	KeyRawFileMD5Set = AppPrefix + ":" + ResumeModulePrefix + ":" + EntityDedupSet

	// KeyJDSkillsCache 岗位描述检出技能缓存 (STRING, JSON数组)
	// 格式: app:jd:skills:{jd_md5}
	KeyJDSkillsCache = AppPrefix + ":" + JDModulePrefix + ":" + EntitySkills + ":%s"

	// KeyMD5RefreshLock 去重集合刷新任务的分布式锁 (STRING)
	// 格式: app:resume:lock:md5_refresh
	KeyMD5RefreshLock = AppPrefix + ":" + ResumeModulePrefix + ":" + EntityLock + ":md5_refresh"
)
