package handler

// failurePrefix 所有用户可见失败消息的统一前缀
const failurePrefix = "⚠️ "

const (
	msgInternalError    = failurePrefix + "出了点问题，请稍后再试"
	msgNotEnabled       = failurePrefix + "本群尚未启用总结功能，管理员可发送 /enable 开启"
	msgNoAPIKey         = failurePrefix + "尚未配置 API Key。请管理员使用 /tldr_setkey 为本群配置。"
	msgKeyDecryptFailed = failurePrefix + "群组 API Key 解密失败。请管理员使用 /tldr_setkey 重新配置。"
	msgNoMessages       = failurePrefix + "指定范围内没有可总结的消息"
	msgInvalidTopic     = failurePrefix + "话题包含不支持的字符或疑似指令，请换个写法"
	msgSummaryFailed    = failurePrefix + "生成总结失败，请稍后再试"
	msgGenerating       = "⏳ 正在生成总结..."
	msgAdminOnly        = failurePrefix + "只有群管理员可以使用该命令"
)

const helpText = `📖 群聊总结机器人

/tldr [范围] [@用户] [风格] [话题] — 总结最近的群聊
  · 范围：消息条数（如 500）或时间（如 24h、3d、day、week），默认 1h
  · @用户：只总结该用户的发言
  · 风格：default、brief、detailed、bullet、timeline
  · 话题：其余文字作为聚焦话题
回复某条消息并发送 /tldr，可总结自该消息以来的内容

/tldr_info — 查看本群状态
/enable、/disable — 启用/禁用总结功能（管理员）
/tldr_style <风格> — 设置本群默认总结风格（管理员）
/tldr_setkey、/tldr_delkey — 配置本群专属 API Key（管理员）`
