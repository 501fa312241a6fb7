// Package display provides colored, marker-prefixed progress output for
// the setup tool. All user-visible messages go through it.
package display

import (
	"fmt"
	"strings"
)

// Terminal color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

const bannerWidth = 70

// Banner prints the given lines framed by horizontal rules.
func Banner(lines ...string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Println(rule)
	for _, line := range lines {
		fmt.Println(line)
	}
	fmt.Println(rule)
}

// Step prints a top-level step header.
func Step(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Success prints a completed-action message.
func Success(format string, args ...interface{}) {
	fmt.Printf("✅ "+format+"\n", args...)
}

// Fail prints a fatal error message.
func Fail(format string, args ...interface{}) {
	fmt.Printf(Red+"❌ "+format+Reset+"\n", args...)
}

// Warn prints a recoverable problem.
func Warn(format string, args ...interface{}) {
	fmt.Printf(Yellow+"⚠️  "+format+Reset+"\n", args...)
}

// Info prints a neutral progress message.
func Info(format string, args ...interface{}) {
	fmt.Printf("📦 "+format+"\n", args...)
}

// Download prints a network transfer message.
func Download(format string, args ...interface{}) {
	fmt.Printf("📥 "+format+"\n", args...)
}

// Scan prints an extraction progress message.
func Scan(format string, args ...interface{}) {
	fmt.Printf("🔍 "+format+"\n", args...)
}

// Detail prints an indented continuation line under a marker message.
func Detail(format string, args ...interface{}) {
	fmt.Printf("   "+format+"\n", args...)
}
