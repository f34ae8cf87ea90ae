package utils

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds an ILIKE pattern matching s anywhere in the column
// Ví dụ: "50%_off" -> "%50\%\_off%"
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// SplitCSV tách chuỗi phân cách bằng dấu phẩy, trim và bỏ phần tử rỗng
// Ví dụ: " go, ,fiber " -> ["go", "fiber"]
func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// UniqueStrings trims values, drops empties and duplicates, keeping first-seen order
func UniqueStrings(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
