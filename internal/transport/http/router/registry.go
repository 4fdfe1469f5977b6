package router

import (
	"sort"

	httpez "inventory-api/internal/transport/http/ez"
)

// Module 一组接口，挂到 EZ 所在分组上
type Module interface{ Mount(httpez.EZ) }

// 可选：实现该接口可控制挂载顺序（数值越小越先挂）
// 不实现则默认 100
type prioritizer interface{ Priority() int }

// Registry 按优先级挂载模块；每个引擎各自一份，测试里可以建多个
type Registry struct {
	mods []Module
}

func (r *Registry) Register(mods ...Module) { r.mods = append(r.mods, mods...) }

func (r *Registry) MountAll(e httpez.EZ) {
	mods := append([]Module(nil), r.mods...)
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.Mount(e)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
