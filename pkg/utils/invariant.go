package utils

import (
	"fmt"
	"log"
)

// Invariant 检查程序不变量
//
// 不变量被破坏属于程序缺陷：
//   - 使用 gyrussdebug 构建标签时直接 panic，尽早暴露问题
//   - 默认构建只记录日志，由调用方自行钳制到合法范围继续运行
//
// 返回 cond 本身，便于调用方写成 if !utils.Invariant(...) { clamp }
func Invariant(cond bool, format string, args ...interface{}) bool {
	if cond {
		return true
	}
	msg := fmt.Sprintf(format, args...)
	if strictInvariants {
		panic("invariant violated: " + msg)
	}
	log.Printf("[Invariant] violated: %s", msg)
	return false
}

// ClampFloat 把 v 限制在 [lo, hi]
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
