package utils

import "github.com/google/uuid"

// NewID 生成 v4 UUID 字符串（36 位，带连字符）
func NewID() string { return uuid.NewString() }
