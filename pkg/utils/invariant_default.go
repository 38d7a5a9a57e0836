//go:build !gyrussdebug

package utils

// strictInvariants 发布构建：不变量被破坏时记录日志并钳制
const strictInvariants = false
