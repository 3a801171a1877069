package service

import "errors"

// 账务操作的业务错误，处理器用 errors.Is 映射为 HTTP 状态码；
// 未列出的错误一律视为存储层故障，原样向上传递
var (
	// ErrNotFound 引用的实体不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrAlreadyExists 名称唯一约束冲突
	ErrAlreadyExists = errors.New("名称已存在")
	// ErrInsufficientFunds 借记会使账户余额为负
	ErrInsufficientFunds = errors.New("账户余额不足")
	// ErrInvalidOperation 非法操作，如转出转入为同一账户、月份格式错误
	ErrInvalidOperation = errors.New("非法操作")
)
