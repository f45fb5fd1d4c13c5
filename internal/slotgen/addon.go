package slotgen

import (
	"sort"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// ExpandAddons добавляет к каждому базовому времени b время b+addonMinutes, если оно не позже end.
// Базовое время сохраняется всегда, даже если его addon не помещается.
// Результат без дубликатов и отсортирован по возрастанию времени.
func ExpandAddons(base []types.TimeString, addonMinutes int, end types.TimeString, includeAddon bool) []types.TimeString {
	if !includeAddon || addonMinutes <= 0 {
		return base
	}

	endMinutes := end.Minutes()
	seen := make(map[int]struct{}, len(base)*2)
	minutes := make([]int, 0, len(base)*2)

	add := func(m int) {
		if _, ok := seen[m]; ok {
			return
		}
		seen[m] = struct{}{}
		minutes = append(minutes, m)
	}

	for _, b := range base {
		bm := b.Minutes()
		if bm < 0 {
			continue
		}
		add(bm)
		if am := bm + addonMinutes; am <= endMinutes {
			add(am)
		}
	}

	sort.Ints(minutes)

	result := make([]types.TimeString, 0, len(minutes))
	for _, m := range minutes {
		t, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			continue
		}
		result = append(result, t)
	}

	return result
}
