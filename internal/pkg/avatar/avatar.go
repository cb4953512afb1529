package avatar

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	baseURL          = "https://api.dicebear.com/7.x/adventurer/svg"
	backgroundColors = "b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf"
	defaultSeed      = "default"
)

var spaces = regexp.MustCompile(`\s+`)

// Seed 基于邮箱或昵称生成稳定的种子值，邮箱优先
func Seed(email, author string) string {
	s := email
	if s == "" {
		s = author
	}
	if s == "" {
		return defaultSeed
	}
	return spaces.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
}

// URL 生成头像地址，对外只暴露种子，不暴露邮箱原文
func URL(seed string, size int) string {
	if size <= 0 {
		size = 80
	}
	q := url.Values{}
	q.Set("seed", seed)
	q.Set("size", strconv.Itoa(size))
	q.Set("backgroundColor", backgroundColors)
	return baseURL + "?" + q.Encode()
}
