package config

// SafeErrorMessage 根据运行模式决定错误详情是否透出
// release 模式返回 fallback，避免把内部错误细节泄露给客户端；
// debug 模式（或配置未初始化时）返回原始错误便于排查
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
