//go:build gyrussdebug

package utils

// strictInvariants 调试构建：不变量被破坏时 panic
const strictInvariants = true
