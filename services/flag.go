// file: services/flag.go
package services

import (
	"regexp"
	"strings"
)

// FlagMatches 判定提交的 Flag 是否命中题目的 Flag 模式。
// 模式是字面字符串，仅 * 作为多字符通配符；其余正则元字符一律按
// 字面处理，整串锚定匹配，区分大小写。纯函数，无副作用。
func FlagMatches(submitted, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return submitted == pattern
	}

	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	// QuoteMeta 之后各段都是安全字面量，编译不会失败
	re := regexp.MustCompile("^" + strings.Join(parts, ".*") + "$")
	return re.MatchString(submitted)
}
